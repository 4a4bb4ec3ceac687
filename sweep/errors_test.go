package sweep

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidInputError(t *testing.T) {
	err := &InvalidInputError{Reason: "zero-length edge"}
	assert.EqualError(t, err, "sweep: invalid input: zero-length edge")
}

func TestSelfOverlapError(t *testing.T) {
	err := &SelfOverlapError{OperandID: 1}
	assert.EqualError(t, err, "sweep: edges of operand 1 overlap themselves")
}

func TestGeometryOracleContractError(t *testing.T) {
	err := &GeometryOracleContractError{Detail: "cross with no intersection point"}
	assert.EqualError(t, err, "sweep: geometry oracle contract violation: cross with no intersection point")
}
