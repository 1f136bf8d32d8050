package types

import "fmt"

// RecordKind discriminates entity types sharing one document collection
type RecordKind string

const (
	RecordKindDatedMemo RecordKind = "dated_memo"
)

// AllRecordKinds returns all valid record kinds
func AllRecordKinds() []RecordKind {
	return []RecordKind{
		RecordKindDatedMemo,
	}
}

// IsValid checks if the record kind is valid
func (k RecordKind) IsValid() bool {
	switch k {
	case RecordKindDatedMemo:
		return true
	default:
		return false
	}
}

// String returns the string representation of the record kind
func (k RecordKind) String() string {
	return string(k)
}

// ParseRecordKind parses a string into a RecordKind
func ParseRecordKind(s string) (RecordKind, error) {
	kind := RecordKind(s)
	if !kind.IsValid() {
		return "", fmt.Errorf("invalid record kind: %s", s)
	}
	return kind, nil
}
