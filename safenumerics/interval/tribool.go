package interval

// Tribool is a three-valued truth value: certainly true, certainly
// false, or undecidable. Interval ordering yields Indeterminate when the
// ranges overlap; callers must branch on IsTrue or IsFalse and never
// collapse Indeterminate into false.
type Tribool uint8

const (
	// Indeterminate means the ranges do not decide the question.
	Indeterminate Tribool = iota
	// True means the relation holds for every pair of values.
	True
	// False means the relation holds for no pair of values.
	False
)

// FromBool lifts a definite answer into a Tribool.
func FromBool(b bool) Tribool {
	if b {
		return True
	}

	return False
}

// IsTrue reports whether t is certainly true.
func (t Tribool) IsTrue() bool {
	return t == True
}

// IsFalse reports whether t is certainly false.
func (t Tribool) IsFalse() bool {
	return t == False
}

// IsIndeterminate reports whether t is undecided.
func (t Tribool) IsIndeterminate() bool {
	return t == Indeterminate
}

// Not negates t; Indeterminate stays Indeterminate.
func (t Tribool) Not() Tribool {
	switch t {
	case True:
		return False
	case False:
		return True
	}

	return Indeterminate
}

// And is three-valued conjunction: False dominates, then Indeterminate.
func (t Tribool) And(u Tribool) Tribool {
	if t == False || u == False {
		return False
	}

	if t == True && u == True {
		return True
	}

	return Indeterminate
}

// Or is three-valued disjunction: True dominates, then Indeterminate.
func (t Tribool) Or(u Tribool) Tribool {
	if t == True || u == True {
		return True
	}

	if t == False && u == False {
		return False
	}

	return Indeterminate
}

func (t Tribool) String() string {
	switch t {
	case True:
		return "true"
	case False:
		return "false"
	}

	return "indeterminate"
}
