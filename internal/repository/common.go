package repository

import "gorm.io/gorm"

// withFields restricts a query to the given columns. The primary key is
// always selected so that the record can be saved back.
func withFields(db *gorm.DB, pk string, fields []string) *gorm.DB {
	if len(fields) == 0 {
		return db
	}

	for _, f := range fields {
		if f == pk {
			return db.Select(fields)
		}
	}

	return db.Select(append([]string{pk}, fields...))
}

// save writes the whole row when no field is given, otherwise only the given
// columns, even if they hold zero values.
func save(db *gorm.DB, data any, fields []string) error {
	if len(fields) == 0 {
		return db.Save(data).Error
	}

	return db.Model(data).Select(fields).Updates(data).Error
}
