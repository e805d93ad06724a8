package errorx

type Code int

var Unknown = Error{Code: Internal, Message: "Request failed"}

const (
	// Common codes
	BadRequest       Code = 100001
	PermissionDenied Code = 100003
	NotFound         Code = 100004
	AlreadyExists    Code = 100006
	Internal         Code = 100007
	Unavailable      Code = 100008

	// Economy codes
	InsufficientFunds Code = 200001
	InvalidState      Code = 200002
	Validation        Code = 200003
)

func (c Code) String() string {
	switch c {
	case BadRequest:
		return "bad_request"
	case PermissionDenied:
		return "permission_denied"
	case NotFound:
		return "not_found"
	case AlreadyExists:
		return "already_exists"
	case Internal:
		return "internal"
	case Unavailable:
		return "unavailable"
	case InsufficientFunds:
		return "insufficient_funds"
	case InvalidState:
		return "invalid_state"
	case Validation:
		return "validation"
	}

	return "unknown"
}
