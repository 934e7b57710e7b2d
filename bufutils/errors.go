package bufutils

import "github.com/pkg/errors"

// PowerOfTwoError is the error returned from CheckPow2 or other methods if the number being tested is not a power of two
var PowerOfTwoError error = errors.New("number must be a power of two")

// PlaneIndexError is the panic value used when a plane index falls outside a buffer's plane count
var PlaneIndexError error = errors.New("plane index out of range")
