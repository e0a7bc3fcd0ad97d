package relay

import (
	"errors"
	"strings"
)

var (
	// ErrTransient is returned when the operation can be retried later without any change
	ErrTransient = errors.New("transient error")
	// ErrAlreadyComplete is returned when the action was already carried out on chain
	ErrAlreadyComplete = errors.New("already complete")
	// ErrFatal is returned on protocol level violations that need operator attention
	ErrFatal = errors.New("fatal error")
	// ErrUnsupported is returned for chain and operation combinations that are not implemented
	ErrUnsupported = errors.New("unsupported")
)

// Class is the outcome of classifying an error returned by an adapter
type Class int

const (
	ClassUnclassified Class = iota
	ClassTransient
	ClassAlreadyComplete
	ClassFatal
)

func (c Class) String() string {
	switch c {
	case ClassTransient:
		return "transient"
	case ClassAlreadyComplete:
		return "already_complete"
	case ClassFatal:
		return "fatal"
	default:
		return "unclassified"
	}
}

// Node errors are matched by message as well, since RPC providers and contracts only give us text
var (
	transientMessages = []string{
		"state root not published",
		"message in challenge period",
		"not yet included",
	}
	alreadyCompleteMessages = []string{
		"message has already been relayed",
		"message already relayed",
		"already claimed",
	}
	fatalMessages = []string{
		"unable to find transaction receipt for",
		"message is undefined",
		"could not find sentmessage event for message",
		"expected 1 message, got",
		"unexpected message status",
		"state not handled for tx",
		"transaction unredeemable",
		"pre-bedrock",
	}
)

// Classify maps err onto the shared error policy. Wrapped sentinels take precedence over message matching.
func Classify(err error) Class {
	if err == nil {
		return ClassUnclassified
	}
	switch {
	case errors.Is(err, ErrAlreadyComplete):
		return ClassAlreadyComplete
	case errors.Is(err, ErrFatal), errors.Is(err, ErrUnsupported):
		return ClassFatal
	case errors.Is(err, ErrTransient):
		return ClassTransient
	}

	msg := strings.ToLower(err.Error())
	switch {
	case containsAny(msg, alreadyCompleteMessages):
		return ClassAlreadyComplete
	case containsAny(msg, fatalMessages):
		return ClassFatal
	case containsAny(msg, transientMessages):
		return ClassTransient
	}
	return ClassUnclassified
}

func containsAny(msg string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}
