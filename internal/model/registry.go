package model

// Resolver dispatches named shocks and policy changes onto the state and the
// four parameter sets without reflection. The name registry is built once at
// configuration time; resolution order is fixed:
//
//	state field, state extension entry, macro, cbdc, trade, banking
//
// First match wins. Names that match nothing are dropped silently; a
// malformed schedule entry is not an error.
type Resolver struct {
	state  *EconomicState
	fields map[string]*float64
	sets   []map[string]*float64
}

func NewResolver(state *EconomicState, macro *MacroParams, cbdc *CBDCParams, trade *TradeParams, banking *BankingParams) *Resolver {
	return &Resolver{
		state:  state,
		fields: state.fieldMap(),
		sets: []map[string]*float64{
			macro.FieldMap(),
			cbdc.FieldMap(),
			trade.FieldMap(),
			banking.FieldMap(),
		},
	}
}

// AddTo applies an additive shock to the named value. Returns false when the
// name resolves to nothing.
func (r *Resolver) AddTo(name string, delta float64) bool {
	if p, ok := r.fields[name]; ok {
		*p += delta
		return true
	}
	// Extension entries are dynamic, so probe the live map rather than a
	// registry built at construction time. Only existing keys resolve.
	if v, ok := r.state.Extra[name]; ok {
		r.state.Extra[name] = v + delta
		return true
	}
	for _, set := range r.sets {
		if p, ok := set[name]; ok {
			*p += delta
			return true
		}
	}
	return false
}

// Set replaces the named value. Returns false when the name resolves to
// nothing.
func (r *Resolver) Set(name string, value float64) bool {
	if p, ok := r.fields[name]; ok {
		*p = value
		return true
	}
	if _, ok := r.state.Extra[name]; ok {
		r.state.Extra[name] = value
		return true
	}
	for _, set := range r.sets {
		if p, ok := set[name]; ok {
			*p = value
			return true
		}
	}
	return false
}
