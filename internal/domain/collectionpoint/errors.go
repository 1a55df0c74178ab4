package collectionpoint

import "github.com/BruksfildServices01/reverse-logistics/internal/httperr"

var (
	ErrNotFound              = httperr.ErrMissing("collection_point_not_found")
	ErrInvalidName           = httperr.ErrBusiness("invalid_name")
	ErrInvalidCoordinates    = httperr.ErrBusiness("invalid_coordinates")
	ErrInvalidTimezone       = httperr.ErrBusiness("invalid_timezone")
	ErrInvalidRadius         = httperr.ErrBusiness("invalid_radius")
	ErrEstablishmentNotFound = httperr.ErrBusiness("establishment_not_found")
	ErrCarrierNotFound       = httperr.ErrBusiness("carrier_not_found")
)
