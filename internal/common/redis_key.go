package common

import "fmt"

func RedisKeySticky(channelID string) string {
	return fmt.Sprintf("sticky:%s", channelID)
}

func LockKeyUser(userID string) string {
	return fmt.Sprintf("lock:user:%s", userID)
}

func LockKeyClub(clubID string) string {
	return fmt.Sprintf("lock:club:%s", clubID)
}

func LockKeyRelation(relationID string) string {
	return fmt.Sprintf("lock:relation:%s", relationID)
}

func LockKeySticky(channelID string) string {
	return fmt.Sprintf("lock:sticky:%s", channelID)
}

// LockKeyUserRelation guards the relations of a user while one is created.
func LockKeyUserRelation(userID string) string {
	return fmt.Sprintf("lock:user_relation:%s", userID)
}
