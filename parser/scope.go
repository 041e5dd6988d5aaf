package parser

import (
	"github.com/t14raptor/es3/ast"
	"github.com/t14raptor/es3/token"
)

// scope is the per function body parsing state. A function body cannot
// break to or continue a label of the function enclosing it, so every
// function gets a fresh label stack.
type scope struct {
	outer *scope

	labels []label
	// labelSet is the label set attached to the statement about to be
	// parsed, or nil.
	labelSet *ast.LabelSet
}

// label is an entry on the label stack. Loops and switches push an
// anonymous label (empty name, nil set) so that bare break and continue
// statements find their target.
type label struct {
	name        string
	set         *ast.LabelSet
	loc         ast.Location
	continuable bool
}

func (p *parser) openScope() {
	p.scope = &scope{outer: p.scope}
}

func (p *parser) closeScope() {
	p.scope = p.scope.outer
}

func (p *parser) pushLabel(name string, set *ast.LabelSet, continuable bool) {
	loc := p.location()
	if name != "" {
		for _, l := range p.scope.labels {
			if l.name == name {
				p.errorf("duplicate label '%s'; %s: previous definition", name, l.loc)
			}
		}
	}
	p.scope.labels = append(p.scope.labels, label{
		name:        name,
		set:         set,
		loc:         loc,
		continuable: continuable,
	})
}

func (p *parser) popLabel() {
	s := p.scope
	s.labels = s.labels[:len(s.labels)-1]
}

// initTarget returns the label set for a breakable statement starting
// here and, for loops, marks its labels as valid continue targets.
func (p *parser) initTarget(continuable bool) *ast.LabelSet {
	set := p.scope.labelSet
	if continuable && set != nil {
		for i := len(p.scope.labels) - 1; i >= 0; i-- {
			if p.scope.labels[i].set == set {
				p.scope.labels[i].continuable = true
			}
		}
	}
	return set
}

// lookupLabel resolves the target of a break or continue statement. An
// empty name finds the innermost enclosing loop (or switch, for break).
func (p *parser) lookupLabel(name string, kind token.Token) *ast.LabelSet {
	labels := p.scope.labels
	for i := len(labels) - 1; i >= 0; i-- {
		l := labels[i]
		if l.name != name {
			continue
		}
		if kind == token.Continue && !l.continuable {
			if name == "" {
				continue
			}
			p.errorf("label '%s' not suitable for continue", name)
		}
		return l.set
	}
	switch {
	case name != "":
		p.errorf("label '%s' not defined, or not reachable", name)
	case kind == token.Continue:
		p.errorf("continue statement not within a loop")
	default:
		p.errorf("break statement not within loop or switch")
	}
	return nil
}
