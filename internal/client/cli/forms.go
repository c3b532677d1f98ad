package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/iudanet/formsync/internal/client/forms"
	"github.com/iudanet/formsync/internal/client/migrate"
	"github.com/iudanet/formsync/internal/migration"
	"github.com/iudanet/formsync/internal/models"
)

// confirmWord ответ, подтверждающий перезапись строк
const confirmWord = "yes"

// applyOptions флаги команды apply
type applyOptions struct {
	storeName string
	yes       bool
}

// loadForm читает описание формы и, если в нем указано хранилище, привязывает форму к нему
func (c *Cli) loadForm(ctx context.Context, path string) (*forms.Definition, error) {
	def, err := forms.LoadDefinition(path)
	if err != nil {
		return nil, err
	}
	if def.Store != "" {
		ref, err := models.ParseStoreReference(def.Store)
		if err != nil {
			return nil, err
		}
		if err := c.forms.Link(ctx, def.ID, ref); err != nil {
			return nil, err
		}
	}
	return def, nil
}

func (c *Cli) runPreview(ctx context.Context, path string) error {
	def, err := c.loadForm(ctx, path)
	if err != nil {
		return err
	}

	plan, err := c.forms.Preview(ctx, def.ID, def.Fields)
	if err != nil {
		return err
	}

	if c.json {
		return c.printJSON(plan)
	}
	c.printPlan(def, plan)
	return nil
}

func (c *Cli) runApply(ctx context.Context, path string, opts applyOptions) error {
	def, err := c.loadForm(ctx, path)
	if err != nil {
		return err
	}

	plan, err := c.forms.Preview(ctx, def.ID, def.Fields)
	if err != nil {
		return err
	}

	if !c.json {
		c.printPlan(def, plan)
	}

	applyOpts := migrate.ApplyOptions{StoreName: opts.storeName, Confirmed: opts.yes}
	if applyOpts.StoreName == "" {
		applyOpts.StoreName = def.Name
	}

	if plan.Decision.Kind == migration.KindFull && !applyOpts.Confirmed {
		prompt := fmt.Sprintf("%d rows will be rewritten. Type '%s' to continue: ", plan.Decision.ExistingRowCount, confirmWord)
		if err := c.confirm(prompt); err != nil {
			return err
		}
		applyOpts.Confirmed = true
	}

	res, err := c.forms.Commit(ctx, def.ID, plan, applyOpts)
	if errors.Is(err, models.ErrConfirmationRequired) && !applyOpts.Confirmed {
		// бэкенд не умеет менять только заголовок, строки придется переписать
		prompt := fmt.Sprintf("Backend cannot update the header in place, %d rows will be rewritten. Type '%s' to continue: ",
			plan.Decision.ExistingRowCount, confirmWord)
		if err := c.confirm(prompt); err != nil {
			return err
		}
		applyOpts.Confirmed = true
		res, err = c.forms.Commit(ctx, def.ID, plan, applyOpts)
	}
	if res != nil {
		if c.json {
			if perr := c.printJSON(res); perr != nil {
				return perr
			}
		} else {
			c.printResult(res)
		}
	}
	if err != nil {
		return err
	}

	c.logger.Info("Form applied", "form_id", def.ID, "kind", res.Kind.String(), "rows", res.RowsMigrated)
	return nil
}

func (c *Cli) confirm(prompt string) error {
	answer, err := c.io.ReadInput(prompt)
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !strings.EqualFold(answer, confirmWord) {
		return ErrAborted
	}
	return nil
}

func (c *Cli) runForms(ctx context.Context) error {
	list, err := c.forms.Forms(ctx)
	if err != nil {
		return err
	}

	if c.json {
		return c.printJSON(list)
	}

	if len(list) == 0 {
		c.io.Println("No forms applied yet")
		return nil
	}

	c.io.Println("=== Forms ===")
	for _, f := range list {
		c.io.Printf("%-24s %-24s fields: %-3d saved: %s\n",
			f.FormID, f.Name, len(f.Fields), f.SavedAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func (c *Cli) runMetrics() error {
	m := c.forms.Metrics()
	if c.json {
		return c.printJSON(m)
	}

	c.io.Println("=== Connector ===")
	c.io.Printf("Requests:     %d\n", m.TotalRequests)
	c.io.Printf("Cache hits:   %d\n", m.CacheHits)
	c.io.Printf("Deduplicated: %d\n", m.Deduplicated)
	c.io.Printf("Retries:      %d\n", m.Retries)
	c.io.Printf("Failures:     %d\n", m.Failures)
	c.io.Printf("Avg latency:  %s\n", m.AverageLatency)
	return nil
}

func (c *Cli) printPlan(def *forms.Definition, plan *migration.Plan) {
	c.io.Printf("=== Preview: %s ===\n", def.ID)

	kind := plan.Decision.Kind.String()
	switch plan.Decision.Kind {
	case migration.KindFull:
		kind += " (confirmation required)"
	case migration.KindNone:
		if plan.Diff.IsEmpty() {
			kind += " (no changes)"
		}
	}
	c.io.Printf("Migration: %s\n", kind)
	c.io.Printf("Rows:      %d\n", plan.Decision.ExistingRowCount)

	for _, f := range plan.Diff.Added {
		c.io.Printf("  + %-20s %-4s %q [%s]\n", f.Key, plan.Columns[f.Key], f.Label, f.Type())
	}
	for _, f := range plan.Diff.Removed {
		c.io.Printf("  - %-20s %q\n", f.Key, f.Label)
	}
	for _, ch := range plan.Diff.Changed {
		line := fmt.Sprintf("  ~ %-20s %q -> %q", ch.FieldKey, ch.FromLabel, ch.ToLabel)
		if ch.FromType != ch.ToType {
			line += fmt.Sprintf(" [%s -> %s]", ch.FromType, ch.ToType)
		}
		if ch.AffectsData {
			line += " (data)"
		}
		c.io.Println(line)
	}
	for _, mv := range plan.Diff.Moved {
		c.io.Printf("  > %-20s %s -> %s\n", mv.FieldKey, mv.FromColumn, mv.ToColumn)
	}

	c.io.Printf("Header:    %s %s\n", plan.Mapper.HeaderRange(plan.Next), strings.Join(plan.Header, " | "))
}

func (c *Cli) printResult(res *migrate.SyncResult) {
	for _, w := range res.Warnings {
		c.io.Printf("! %s\n", w)
	}
	if res.NewReference != nil {
		c.io.Printf("Store relinked: %s\n", res.NewReference)
	}

	switch {
	case res.Err != nil:
		c.io.Printf("✗ Migration stopped at step %s\n", res.Step)
	case res.Resumed:
		c.io.Printf("✓ Interrupted migration resumed: %d rows rewritten\n", res.RowsMigrated)
	case res.Applied && res.Kind == migration.KindFull:
		c.io.Printf("✓ Applied: %d rows rewritten\n", res.RowsMigrated)
	case res.Applied:
		c.io.Println("✓ Applied: header updated")
	default:
		c.io.Println("✓ Form saved, store already up to date")
	}
}
