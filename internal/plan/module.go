package plan

import (
	"fmt"
	"strings"
)

// Module is the farm area a plan belongs to. It drives color coding on the
// calendar and the optional module filter.
type Module string

const (
	ModuleGeneral     Module = "general"
	ModuleApiculture  Module = "apicultura"
	ModuleAgriculture Module = "agricultura"
	ModuleLivestock   Module = "ganaderia"
	ModulePoultry     Module = "avicultura"
)

// Modules lists every known module in display order.
var Modules = []Module{
	ModuleApiculture,
	ModuleAgriculture,
	ModuleLivestock,
	ModulePoultry,
	ModuleGeneral,
}

var moduleLabels = map[Module]string{
	ModuleGeneral:     "General",
	ModuleApiculture:  "Apicultura",
	ModuleAgriculture: "Agricultura",
	ModuleLivestock:   "Ganadería",
	ModulePoultry:     "Avicultura",
}

// Known reports whether m is one of the fixed modules.
func (m Module) Known() bool {
	_, ok := moduleLabels[m]
	return ok
}

// Normalize maps an empty or unknown module to ModuleGeneral.
func (m Module) Normalize() Module {
	if m.Known() {
		return m
	}
	return ModuleGeneral
}

// Label returns the display label, falling back to the general label.
func (m Module) Label() string {
	return moduleLabels[m.Normalize()]
}

// ParseModule validates a module name. The empty string is accepted and means
// "no module".
func ParseModule(s string) (Module, error) {
	m := Module(strings.ToLower(strings.TrimSpace(s)))
	if m == "" || m.Known() {
		return m, nil
	}
	return "", fmt.Errorf("invalid module %q (valid: %s)", s, moduleList())
}

func moduleList() string {
	names := make([]string, len(Modules))
	for i, m := range Modules {
		names[i] = string(m)
	}
	return strings.Join(names, "|")
}
