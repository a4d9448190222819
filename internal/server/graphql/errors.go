package graphql

import "github.com/dmitrijs2005/personql/internal/common"

const codeBadUserInput = "BAD_USER_INPUT"

// userInputError is a resolver error carrying GraphQL extensions. It must be
// returned unwrapped so the engine picks up Extensions.
type userInputError struct {
	message     string
	invalidArgs any
}

func (e *userInputError) Error() string {
	return e.message
}

func (e *userInputError) Extensions() map[string]interface{} {
	return map[string]interface{}{
		"code":        codeBadUserInput,
		"invalidArgs": e.invalidArgs,
	}
}

func duplicateNameError(dup *common.DuplicateNameError) *userInputError {
	return &userInputError{message: "Name must be unique", invalidArgs: dup.Name}
}
