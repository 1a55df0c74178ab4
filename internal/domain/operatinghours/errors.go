package operatinghours

import "github.com/BruksfildServices01/reverse-logistics/internal/httperr"

var (
	ErrInvalidFormat    = httperr.ErrBusiness("invalid_time_format")
	ErrInvalidOrder     = httperr.ErrBusiness("invalid_time_order")
	ErrIndexOutOfRange  = httperr.ErrBusiness("time_slot_index_out_of_range")
	ErrOverlappingSlots = httperr.ErrBusiness("overlapping_time_slots")
	ErrInvalidWeekday   = httperr.ErrBusiness("invalid_weekday")
)
