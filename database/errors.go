package database

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// IsNotFound reports whether an error is the driver's missing-document error.
func IsNotFound(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}
