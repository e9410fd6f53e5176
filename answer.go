package tutor

import "errors"

// InvalidTaskMessage is the answer returned for an unrecognized task.
const InvalidTaskMessage = "Invalid task selected."

// Answer is the text returned to the caller of a tutoring request.
// StopReason is empty for answers that did not come from a completion.
type Answer struct {
	Text       string
	StopReason StopReason
}

// ErrorAnswer renders err as the user-visible answer. Unsupported tasks
// produce InvalidTaskMessage; every other failure embeds the error message.
func ErrorAnswer(err error) Answer {
	if errors.Is(err, ErrUnsupportedTask) {
		return Answer{Text: InvalidTaskMessage}
	}
	return Answer{Text: "An error occurred: " + err.Error()}
}
