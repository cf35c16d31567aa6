package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this email already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrProductNotFound indicates that product with this code does not exist
	ErrProductNotFound = errors.New("product not found")

	// ErrAdjustmentConflict indicates that adjustment id was already used for another product
	ErrAdjustmentConflict = errors.New("adjustment id already used for another product")

	// ErrShipmentNotFound indicates that shipment with this id does not exist
	ErrShipmentNotFound = errors.New("shipment not found")

	// ErrShipmentConflict indicates that shipment id was already used for another shipment type
	ErrShipmentConflict = errors.New("shipment id already used for another shipment type")
)
