package sparsetable

import "errors"

var (
	// ErrInvalidCell is returned when a cell is offered to a Container
	// whose index does not match the cell's coordinate on the container's axis.
	ErrInvalidCell = errors.New("sparsetable: cell does not belong to container")

	// ErrInconsistentTable indicates that the row index and the column index
	// of a Table disagree. It is only ever caused by a bookkeeping bug,
	// the table must not be used after it was returned.
	ErrInconsistentTable = errors.New("sparsetable: row and column index are inconsistent")

	// ErrEmptyTable is returned by CellRange for a table without cells.
	ErrEmptyTable = errors.New("sparsetable: table is empty")

	// ErrIllegalState is returned by Iterator.Remove
	// when the iterator is not positioned at a cell.
	ErrIllegalState = errors.New("sparsetable: iterator is not positioned at a cell")

	// ErrConcurrentModification is returned by an Iterator when the structure
	// of its Table was changed by anything else than the iterator itself.
	ErrConcurrentModification = errors.New("sparsetable: table modified during iteration")

	// ErrKeyNotFound is returned by Container.RemoveKey for an absent key.
	ErrKeyNotFound = errors.New("sparsetable: key not found")
)
