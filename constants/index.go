package constants

// Locals keys
const (
	LOCAL_DB         = "db"
	LOCAL_SESSION    = "session"
	LOCAL_REQUEST_ID = "request_id"
	LOCAL_INPUT_ID   = "inputId"
)

// Flash categories
const (
	FLASH_SUCCESS = "success"
	FLASH_ERROR   = "error"
)

const (
	ERROR_INPUT                = "Invalid input"
	ERROR_INTERNAL_ERROR       = "Internal server error"
	ERROR_PARSE_DATA_TO_LOCALS = "Could not read request data"
	DATA_INPUT_IS_NOT_NUMBER   = "Id must be a number"
	VENUE_NOT_FOUND            = "Venue not found"
	ARTIST_NOT_FOUND           = "Artist not found"
	EDIT_FIELD_UNKNOWN         = "Unknown field"
	EDIT_NOTHING_TO_UPDATE     = "Nothing to update"
	IMAGE_UPLOAD_DISABLED      = "Image uploads are not configured"
	IMAGE_FORMAT_UNSUPPORTED   = "Only PNG, JPG and JPEG images are supported"
	IMAGE_UPLOAD_FAILED        = "Image upload failed"
)

var IMAGE_EXTENSIONS = []string{".png", ".jpg", ".jpeg"}
