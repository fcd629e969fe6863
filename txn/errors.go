package txn

import "errors"

// errInvalidTransactionVersion mirrors the teacher's sentinel of the
// same name in core/transaction.go: a (type, version) pair this
// package doesn't know how to hash.
var errInvalidTransactionVersion = errors.New("txn: invalid transaction type/version combination")

// ErrUnknownResource is returned when a resource_bounds mapping lacks
// L1_GAS or L2_GAS. Keys other than L1_GAS, L2_GAS and L1_DATA_GAS are
// ignored.
var ErrUnknownResource = errors.New("txn: unknown resource bound")
