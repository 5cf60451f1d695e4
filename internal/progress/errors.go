package progress

import apperrors "github.com/louisbranch/questboard/internal/platform/errors"

var (
	// ErrNotFound indicates a goal, task or daily board is missing.
	ErrNotFound = apperrors.New(apperrors.CodeNotFound, "record not found")
	// ErrInvalidCatalog indicates catalog data breaks an integrity rule.
	ErrInvalidCatalog = apperrors.New(apperrors.CodeInvalidCatalog, "invalid catalog")
	// ErrInvalidCount indicates a negative selection size.
	ErrInvalidCount = apperrors.New(apperrors.CodeInvalidCount, "selection size must not be negative")
	// ErrNotEnoughItems indicates more distinct items were requested than exist.
	ErrNotEnoughItems = apperrors.New(apperrors.CodeNotEnoughItems, "not enough items to select from")
	// ErrNoCandidates indicates every item is excluded from a replacement pick.
	ErrNoCandidates = apperrors.New(apperrors.CodeNoCandidates, "no replacement candidates remain")
	// ErrSlotOutOfRange indicates a daily slot index outside the board.
	ErrSlotOutOfRange = apperrors.New(apperrors.CodeSlotOutOfRange, "daily slot out of range")
	// ErrSlotCompleted indicates a slot whose reward was already granted.
	ErrSlotCompleted = apperrors.New(apperrors.CodeSlotCompleted, "daily slot already completed")
)
