package memory

import (
	"context"
	"errors"
	"fmt"

	"github.com/fabworks/contentbridge/internal/domain"
	"github.com/fabworks/contentbridge/internal/runtime"
)

// itemHandle is one opened item. Rebinds collect in pending and reach the
// configuration's per-path bindings only on Save.
type itemHandle struct {
	cfg     *Config
	path    string
	rec     itemRecord
	refs    domain.ReferenceSet
	pending map[domain.Category]string
	closed  bool
}

var errHandleClosed = errors.New("item handle is closed")

func (h *itemHandle) DatabaseID() string { return h.rec.DatabaseID }

func (h *itemHandle) CID() int { return h.rec.cid }

func (h *itemHandle) References(ctx context.Context) (domain.ReferenceSet, error) {
	if err := h.usable(ctx); err != nil {
		return domain.ReferenceSet{}, err
	}
	refs := h.refs
	for category, name := range h.pending {
		refs.Set(category, name)
	}
	return refs, nil
}

func (h *itemHandle) ProductList(ctx context.Context) (*domain.ProductList, error) {
	if err := h.usable(ctx); err != nil {
		return nil, err
	}
	if h.rec.ProductList == nil {
		return nil, nil
	}
	pl := &domain.ProductList{
		Revision: h.rec.ProductList.Revision,
		Rows:     append([]domain.ProductRow(nil), h.rec.ProductList.Rows...),
	}
	return pl, nil
}

func (h *itemHandle) Rebind(ctx context.Context, category domain.Category, name string) error {
	if err := h.usable(ctx); err != nil {
		return err
	}
	if !category.Rebindable() {
		return fmt.Errorf("%w: %s", runtime.ErrNotRebindable, category)
	}
	canonical, ok := h.cfg.resolveLookup(category, name)
	if !ok {
		return fmt.Errorf("%w: %s %q", runtime.ErrNameNotFound, category, name)
	}
	h.pending[category] = canonical
	return nil
}

func (h *itemHandle) Save(ctx context.Context) error {
	if err := h.usable(ctx); err != nil {
		return err
	}
	refs := h.refs
	for category, name := range h.pending {
		refs.Set(category, name)
	}
	h.cfg.saveBindings(h.path, refs)
	h.refs = refs
	h.pending = make(map[domain.Category]string)
	return nil
}

func (h *itemHandle) Close() error {
	h.closed = true
	return nil
}

func (h *itemHandle) usable(ctx context.Context) error {
	if h.closed {
		return errHandleClosed
	}
	return ctx.Err()
}
