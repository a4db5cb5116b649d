package seed_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcelsud/fake-third-party/customer"
	"github.com/marcelsud/fake-third-party/seed"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	tmpFile, err := os.CreateTemp("", "seed-*.yaml")
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(tmpFile.Name()) })

	_, err = tmpFile.WriteString(content)
	require.NoError(t, err)
	tmpFile.Close()
	return tmpFile.Name()
}

func TestLoad(t *testing.T) {
	t.Run("success - valid seed file", func(t *testing.T) {
		path := writeSeedFile(t, `
customers:
  - id: "hs-001"
    archived: false
    payment_term: "Net 30"
  - id: "hs-002"
  - id: "hs-003"
    archived: true
`)

		customers, err := seed.Load(path)

		require.NoError(t, err)
		require.Len(t, customers, 3)
		assert.Equal(t, "hs-001", customers[0].ID)
		assert.Equal(t, customer.Net30, customers[0].PaymentTerm)
		assert.False(t, customers[1].PaymentTerm.IsSet())
		assert.True(t, customers[2].Archived)
	})

	t.Run("error - file not found", func(t *testing.T) {
		_, err := seed.Load("nonexistent.yaml")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading seed file")
	})

	t.Run("error - invalid YAML", func(t *testing.T) {
		path := writeSeedFile(t, `invalid yaml content: [[[`)

		_, err := seed.Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing seed YAML")
	})

	t.Run("error - unknown payment term", func(t *testing.T) {
		path := writeSeedFile(t, `
customers:
  - id: "hs-001"
    payment_term: "Net 90"
`)

		_, err := seed.Load(path)

		require.Error(t, err)
		assert.ErrorIs(t, err, customer.ErrInvalidPaymentTerm)
	})

	t.Run("error - duplicate id", func(t *testing.T) {
		path := writeSeedFile(t, `
customers:
  - id: "hs-001"
  - id: "hs-001"
`)

		_, err := seed.Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate seed customer id")
	})

	t.Run("error - empty id", func(t *testing.T) {
		path := writeSeedFile(t, `
customers:
  - archived: true
`)

		_, err := seed.Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "id cannot be empty")
	})
}

func TestDefaults(t *testing.T) {
	customers := seed.Defaults()

	require.Len(t, customers, 3)
	assert.Equal(t, customer.Customer{ID: "hs-001", PaymentTerm: customer.Net30}, customers[0])
	assert.Equal(t, customer.Customer{ID: "hs-002"}, customers[1])
	assert.Equal(t, customer.Customer{ID: "hs-003", Archived: true}, customers[2])
}
