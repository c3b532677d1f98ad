package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/formsync/internal/client/forms"
)

// submitOptions флаги команды submit
type submitOptions struct {
	ip        string
	userAgent string
	values    []string
}

// parseValues разбирает пары key=value. Повтор ключа считается ошибкой.
func parseValues(pairs []string) (map[string]string, error) {
	values := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid value %q: expected key=value", pair)
		}
		if _, dup := values[key]; dup {
			return nil, fmt.Errorf("value for %q given twice", key)
		}
		values[key] = value
	}
	return values, nil
}

func (c *Cli) runSubmit(ctx context.Context, formID string, opts submitOptions) error {
	values, err := parseValues(opts.values)
	if err != nil {
		return err
	}

	res, err := c.forms.Submit(ctx, formID, values, forms.SubmissionMeta{
		IP:        opts.ip,
		UserAgent: opts.userAgent,
	})
	if err != nil {
		return err
	}

	if c.json {
		return c.printJSON(res)
	}
	c.io.Printf("✓ Response recorded, store has %d rows\n", res.RowCount)
	return nil
}
