package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong. Please try again later."

	InternalServerErrorCode = 500
)
