package plan

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/colmenar/agenda/internal/kv"
)

// ActionTypeOther is the catch-all key for plans without an action type.
const ActionTypeOther = "otro"

// customTypesKey is the settings key holding user-defined action types.
const customTypesKey = "custom_action_types"

// ActionType is a value/label pair for an activity kind.
type ActionType struct {
	Value  string `json:"value"`
	Label  string `json:"label"`
	Custom bool   `json:"-"`
}

// BuiltinActionTypes is the fixed activity table.
var BuiltinActionTypes = []ActionType{
	{Value: "inspeccion", Label: "Inspección"},
	{Value: "alimentacion", Label: "Alimentación"},
	{Value: "tratamiento", Label: "Tratamiento"},
	{Value: "cosecha", Label: "Cosecha"},
	{Value: "division", Label: "División de colmena"},
	{Value: "cambio_reina", Label: "Cambio de reina"},
	{Value: "siembra", Label: "Siembra"},
	{Value: "riego", Label: "Riego"},
	{Value: "fertilizacion", Label: "Fertilización"},
	{Value: "poda", Label: "Poda"},
	{Value: "vacunacion", Label: "Vacunación"},
	{Value: "mantenimiento", Label: "Mantenimiento"},
	{Value: ActionTypeOther, Label: "Otro"},
}

var builtinLabels = func() map[string]string {
	m := make(map[string]string, len(BuiltinActionTypes))
	for _, at := range BuiltinActionTypes {
		m[at.Value] = at.Label
	}
	return m
}()

// NormalizeActionType maps an empty action type to ActionTypeOther.
func NormalizeActionType(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ActionTypeOther
	}
	return key
}

// ActionTypeLabeler resolves action type keys to labels using the builtin
// table plus custom types kept in a kv.Store.
type ActionTypeLabeler struct {
	store kv.Store

	mu     sync.RWMutex
	custom []ActionType
}

// NewActionTypeLabeler loads custom types from store. A nil store yields a
// labeler with only the builtin table.
func NewActionTypeLabeler(ctx context.Context, store kv.Store) (*ActionTypeLabeler, error) {
	l := &ActionTypeLabeler{store: store}
	if store == nil {
		return l, nil
	}

	raw, ok, err := store.Get(ctx, customTypesKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load custom action types: %w", err)
	}
	if !ok || raw == "" {
		return l, nil
	}

	var custom []ActionType
	if err := json.Unmarshal([]byte(raw), &custom); err != nil {
		return nil, fmt.Errorf("failed to parse custom action types: %w", err)
	}
	for i := range custom {
		custom[i].Custom = true
	}
	l.custom = custom
	return l, nil
}

// Label returns the label for key. Empty keys resolve to the "otro" label and
// unknown keys fall back to the key itself.
func (l *ActionTypeLabeler) Label(key string) string {
	key = NormalizeActionType(key)
	if l != nil {
		l.mu.RLock()
		for _, at := range l.custom {
			if at.Value == key {
				l.mu.RUnlock()
				return at.Label
			}
		}
		l.mu.RUnlock()
	}
	if label, ok := builtinLabels[key]; ok {
		return label
	}
	return key
}

// Types returns the builtin types followed by custom ones.
func (l *ActionTypeLabeler) Types() []ActionType {
	out := make([]ActionType, 0, len(BuiltinActionTypes))
	out = append(out, BuiltinActionTypes...)
	if l == nil {
		return out
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append(out, l.custom...)
}

// AddCustom registers or relabels a custom action type and persists it.
func (l *ActionTypeLabeler) AddCustom(ctx context.Context, value, label string) error {
	value = strings.TrimSpace(value)
	label = strings.TrimSpace(label)
	if value == "" || label == "" {
		return fmt.Errorf("action type value and label are required")
	}
	if _, ok := builtinLabels[value]; ok {
		return fmt.Errorf("action type %q is builtin", value)
	}

	l.mu.Lock()
	replaced := false
	for i := range l.custom {
		if l.custom[i].Value == value {
			l.custom[i].Label = label
			replaced = true
		}
	}
	if !replaced {
		l.custom = append(l.custom, ActionType{Value: value, Label: label, Custom: true})
	}
	l.mu.Unlock()

	return l.persist(ctx)
}

// RemoveCustom deletes a custom action type. Removing an unknown key is not an
// error.
func (l *ActionTypeLabeler) RemoveCustom(ctx context.Context, value string) error {
	l.mu.Lock()
	kept := l.custom[:0]
	for _, at := range l.custom {
		if at.Value != value {
			kept = append(kept, at)
		}
	}
	l.custom = kept
	l.mu.Unlock()

	return l.persist(ctx)
}

func (l *ActionTypeLabeler) persist(ctx context.Context) error {
	if l.store == nil {
		return nil
	}
	l.mu.RLock()
	data, err := json.Marshal(l.custom)
	l.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to marshal custom action types: %w", err)
	}
	if err := l.store.Set(ctx, customTypesKey, string(data)); err != nil {
		return fmt.Errorf("failed to save custom action types: %w", err)
	}
	return nil
}
