package engine

// RuleSym identifies a grammar rule in a SymbolTable.
type RuleSym int

// SymbolTable interns rule names.
type SymbolTable struct {
	names []string
	ids   map[string]RuleSym
}

func newSymbolTable() *SymbolTable {
	return &SymbolTable{ids: make(map[string]RuleSym)}
}

// Intern returns the symbol for name, allocating one on first use.
func (t *SymbolTable) Intern(name string) RuleSym {
	if sym, ok := t.ids[name]; ok {
		return sym
	}
	sym := RuleSym(len(t.names))
	t.names = append(t.names, name)
	t.ids[name] = sym
	return sym
}

// Resolve returns the name of sym, or false when the symbol is unknown.
func (t *SymbolTable) Resolve(sym RuleSym) (string, bool) {
	if sym < 0 || int(sym) >= len(t.names) {
		return "", false
	}
	return t.names[sym], true
}
