// Package panel implements the article parameters panel: a draft buffer that
// is edited while the panel is open and committed only on apply or reset.
package panel

import (
	"github.com/zam-dot/articleparams/internal/appearance"
)

// Committer supplies the committed settings and accepts replacements.
type Committer interface {
	Current() appearance.Settings
	Commit(appearance.Settings)
}

// Controller holds the panel visibility and its draft buffer.
//
// Transitions:
//
//	CLOSED --Toggle--> OPEN     draft := committed
//	OPEN   --Toggle--> CLOSED
//	OPEN   --OutsideInteraction--> CLOSED
//	OPEN   --Apply--> CLOSED    committed := draft
//	OPEN   --Reset--> CLOSED    draft, committed := default
type Controller struct {
	committer Committer
	open      bool
	draft     appearance.Settings
}

// NewController creates a closed panel whose draft equals the committed value.
func NewController(committer Committer) *Controller {
	return &Controller{
		committer: committer,
		draft:     committer.Current(),
	}
}

// IsOpen reports the visibility flag.
func (c *Controller) IsOpen() bool {
	return c.open
}

// Draft returns the draft buffer. Only meaningful while the panel is open.
func (c *Controller) Draft() appearance.Settings {
	return c.draft
}

// Committed returns the value currently driving presentation.
func (c *Controller) Committed() appearance.Settings {
	return c.committer.Current()
}

// Dirty reports whether the draft differs from the committed value.
func (c *Controller) Dirty() bool {
	return c.draft != c.committer.Current()
}

// Toggle flips visibility. Opening discards any earlier unsaved edits by
// copying the committed value into the draft.
func (c *Controller) Toggle() {
	c.open = !c.open
	if c.open {
		c.draft = c.committer.Current()
	}
}

// Set replaces one draft field. A foreign option leaves the draft untouched
// and returns a *apperr.ForeignOptionError.
func (c *Controller) Set(category appearance.Category, option appearance.Option) error {
	next, err := c.draft.With(category, option)
	if err != nil {
		return err
	}
	c.draft = next
	return nil
}

// Apply commits the draft verbatim and closes the panel.
func (c *Controller) Apply() {
	c.committer.Commit(c.draft)
	c.open = false
}

// Reset forces both draft and committed value to the global default and
// closes the panel, whatever the previous committed value was.
func (c *Controller) Reset() {
	c.draft = appearance.Default()
	c.committer.Commit(c.draft)
	c.open = false
}

// OutsideInteraction closes an open panel without committing. The draft is
// left as is; the next Toggle overwrites it.
func (c *Controller) OutsideInteraction() {
	if c.open {
		c.open = false
	}
}
