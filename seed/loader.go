package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/marcelsud/fake-third-party/customer"
)

/* Loader reads the demonstration customers from a seed.yaml file.
 * Seeding happens once at process start; a restart is a full reset.
 */

// Config represents the structure of seed.yaml
type Config struct {
	Customers []CustomerConfig `yaml:"customers"`
}

// CustomerConfig represents a single customer in the YAML file
type CustomerConfig struct {
	ID          string `yaml:"id"`
	Archived    bool   `yaml:"archived"`
	PaymentTerm string `yaml:"payment_term"`
}

// Defaults returns the three built-in demonstration customers used when no
// seed file is configured
func Defaults() []customer.Customer {
	return []customer.Customer{
		{ID: "hs-001", Archived: false, PaymentTerm: customer.Net30},
		{ID: "hs-002", Archived: false},
		{ID: "hs-003", Archived: true},
	}
}

// Load reads and validates seed customers from a YAML file
func Load(path string) ([]customer.Customer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing seed YAML: %w", err)
	}

	seen := make(map[string]struct{}, len(config.Customers))
	customers := make([]customer.Customer, 0, len(config.Customers))
	for _, cc := range config.Customers {
		if cc.ID == "" {
			return nil, fmt.Errorf("seed customer id cannot be empty")
		}
		if _, dup := seen[cc.ID]; dup {
			return nil, fmt.Errorf("duplicate seed customer id: %s", cc.ID)
		}
		seen[cc.ID] = struct{}{}

		term := customer.PaymentTerm(cc.PaymentTerm)
		if err := term.Validate(); err != nil {
			return nil, fmt.Errorf("validating seed customer %s: %w", cc.ID, err)
		}

		customers = append(customers, customer.Customer{
			ID:          cc.ID,
			Archived:    cc.Archived,
			PaymentTerm: term,
		})
	}

	return customers, nil
}
