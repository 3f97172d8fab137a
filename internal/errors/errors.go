// Package errors holds the domain error catalog shared by services and
// handlers. Every failure a client can see carries a stable numeric code and
// a human readable message.
package errors

import (
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"
)

// DomainError is a business rule failure with a stable code.
type DomainError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is matches any DomainError carrying the same code, so callers can compare
// against a catalog entry with errors.Is.
func (e *DomainError) Is(target error) bool {
	var other *DomainError
	if !stderrors.As(target, &other) {
		return false
	}
	return other.Code == e.Code
}

// Kind is a catalog entry: a code plus a message template. Templates use
// positional {0} placeholders or sequential {} placeholders.
type Kind struct {
	Code     int
	Template string
}

// New renders the template with args and returns the error.
func (k Kind) New(args ...any) *DomainError {
	return &DomainError{Code: k.Code, Message: Format(k.Template, args...)}
}

// Is reports whether err is a DomainError of this kind.
func (k Kind) Is(err error) bool {
	var de *DomainError
	return stderrors.As(err, &de) && de.Code == k.Code
}

// As extracts a DomainError from err.
func As(err error) (*DomainError, bool) {
	var de *DomainError
	if stderrors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// Format substitutes {N} and {} placeholders in template. A placeholder with
// no matching argument is left as written.
func Format(template string, args ...any) string {
	if !strings.Contains(template, "{") {
		return template
	}

	var b strings.Builder
	next := 0
	for i := 0; i < len(template); i++ {
		if template[i] != '{' {
			b.WriteByte(template[i])
			continue
		}
		end := strings.IndexByte(template[i:], '}')
		if end < 0 {
			b.WriteString(template[i:])
			break
		}
		field := template[i+1 : i+end]
		idx := -1
		if field == "" {
			idx = next
			next++
		} else if n, err := strconv.Atoi(field); err == nil && n >= 0 {
			idx = n
		}
		if idx >= 0 && idx < len(args) {
			fmt.Fprint(&b, args[idx])
		} else {
			b.WriteString(template[i : i+end+1])
		}
		i += end
	}
	return b.String()
}
