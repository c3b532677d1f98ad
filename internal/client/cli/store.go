package cli

import (
	"context"

	"github.com/iudanet/formsync/internal/models"
)

func (c *Cli) runStoreCreate(ctx context.Context, formID, name, tab string) error {
	info, err := c.forms.CreateStore(ctx, formID, name, tab)
	if err != nil {
		return err
	}

	if c.json {
		return c.printJSON(info)
	}
	ref := models.StoreReference{ID: info.ID, Tab: info.Tab}
	c.io.Printf("✓ Store %q created and linked to %s\n", info.Name, formID)
	c.io.Printf("Reference: %s\n", ref)
	return nil
}

func (c *Cli) runStoreLink(ctx context.Context, formID, raw string) error {
	ref, err := models.ParseStoreReference(raw)
	if err != nil {
		return err
	}
	if err := c.forms.Link(ctx, formID, ref); err != nil {
		return err
	}

	if c.json {
		return c.printJSON(map[string]string{"form_id": formID, "store": ref.String()})
	}
	c.io.Printf("✓ Form %s linked to %s\n", formID, ref)
	return nil
}
