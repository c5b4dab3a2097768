package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentTransaction_Validate(t *testing.T) {
	orderID := "o1"
	apptID := "a1"

	t.Run("order reference", func(t *testing.T) {
		txn := &PaymentTransaction{ExternalID: "ext-1", OrderID: &orderID}
		require.NoError(t, txn.Validate())
	})

	t.Run("appointment reference", func(t *testing.T) {
		txn := &PaymentTransaction{ExternalID: "ext-1", AppointmentID: &apptID}
		require.NoError(t, txn.Validate())
	})

	t.Run("no reference", func(t *testing.T) {
		txn := &PaymentTransaction{ExternalID: "ext-1"}
		assert.ErrorIs(t, txn.Validate(), ErrValidation)
	})

	t.Run("both references", func(t *testing.T) {
		txn := &PaymentTransaction{ExternalID: "ext-1", OrderID: &orderID, AppointmentID: &apptID}
		assert.ErrorIs(t, txn.Validate(), ErrValidation)
	})

	t.Run("missing external id", func(t *testing.T) {
		txn := &PaymentTransaction{OrderID: &orderID}
		assert.ErrorIs(t, txn.Validate(), ErrValidation)
	})
}
