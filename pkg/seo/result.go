package seo

// ResultKind tells which variant a Result holds
type ResultKind int

const (
	// ResultNone means the rule contributes nothing
	ResultNone ResultKind = iota
	// ResultSingle holds exactly one tag
	ResultSingle
	// ResultMultiple holds one or more tags
	ResultMultiple
)

// String returns the string representation of ResultKind
func (k ResultKind) String() string {
	switch k {
	case ResultNone:
		return "none"
	case ResultSingle:
		return "single"
	case ResultMultiple:
		return "multiple"
	default:
		return "unknown"
	}
}

// Result is what a rule resolves to
type Result struct {
	kind ResultKind
	tags []Tag
}

// None returns an empty result
func None() Result {
	return Result{kind: ResultNone}
}

// Single returns a result holding one tag
func Single(tag Tag) Result {
	return Result{kind: ResultSingle, tags: []Tag{tag}}
}

// Multiple returns a result holding tags in order. With no tags it is None.
func Multiple(tags ...Tag) Result {
	if len(tags) == 0 {
		return None()
	}
	out := make([]Tag, len(tags))
	copy(out, tags)
	return Result{kind: ResultMultiple, tags: out}
}

// Kind returns the variant held by the result
func (r Result) Kind() ResultKind {
	return r.kind
}

// IsNone reports whether the result contributes nothing
func (r Result) IsNone() bool {
	return r.kind == ResultNone
}

// Tags returns the contributed tags in order; nil for None
func (r Result) Tags() []Tag {
	switch r.kind {
	case ResultSingle, ResultMultiple:
		out := make([]Tag, len(r.tags))
		copy(out, r.tags)
		return out
	default:
		return nil
	}
}

// Tag returns the single tag of a ResultSingle
func (r Result) Tag() (Tag, bool) {
	if r.kind != ResultSingle {
		return Tag{}, false
	}
	return r.tags[0], true
}
