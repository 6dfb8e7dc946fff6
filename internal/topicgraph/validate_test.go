package topicgraph

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate_CleanGraph(t *testing.T) {
	if err := testGraph().Validate(); err != nil {
		t.Fatalf("clean graph failed validation: %v", err)
	}
}

func TestValidate_DuplicateTopic(t *testing.T) {
	g := New([]Topic{{ID: "a"}, {ID: "a"}}, nil)
	err := g.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), `duplicate topic ID: "a"`) {
		t.Errorf("error missing duplicate report: %v", err)
	}
}

func TestValidate_DanglingPrerequisite(t *testing.T) {
	g := New(
		[]Topic{{ID: "a"}, {ID: "b"}},
		[]Prerequisite{{TopicID: "b", PrerequisiteID: "ghost"}},
	)
	err := g.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), `undeclared prerequisite "ghost"`) {
		t.Errorf("error missing dangling report: %v", err)
	}
}

func TestValidate_SelfEdge(t *testing.T) {
	g := New(
		[]Topic{{ID: "a"}, {ID: "b"}},
		[]Prerequisite{{TopicID: "b", PrerequisiteID: "b"}},
	)
	err := g.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), `lists itself as a prerequisite`) {
		t.Errorf("error missing self-edge report: %v", err)
	}
}

func TestValidate_DoubleEdge(t *testing.T) {
	g := New(
		[]Topic{{ID: "a"}, {ID: "b"}},
		[]Prerequisite{
			{TopicID: "b", PrerequisiteID: "a"},
			{TopicID: "b", PrerequisiteID: "a", MasteryThreshold: 0.9},
		},
	)
	err := g.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), `lists prerequisite "a" twice`) {
		t.Errorf("error missing double-edge report: %v", err)
	}
}

func TestValidate_BadThresholdAndWeight(t *testing.T) {
	g := New(
		[]Topic{{ID: "a"}, {ID: "b"}},
		[]Prerequisite{{TopicID: "b", PrerequisiteID: "a", MasteryThreshold: 1.5, Weight: -1}},
	)
	err := g.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "mastery threshold must be in (0, 1.0]") {
		t.Errorf("error missing threshold report: %v", err)
	}
	if !strings.Contains(err.Error(), "weight must be > 0") {
		t.Errorf("error missing weight report: %v", err)
	}
}

func TestValidate_Cycle(t *testing.T) {
	g := New(
		[]Topic{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "root"}},
		[]Prerequisite{
			{TopicID: "a", PrerequisiteID: "root"},
			{TopicID: "a", PrerequisiteID: "c"},
			{TopicID: "b", PrerequisiteID: "a"},
			{TopicID: "c", PrerequisiteID: "b"},
		},
	)
	err := g.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "prerequisite cycle involving topics: a, b, c") {
		t.Errorf("error missing cycle report: %v", err)
	}
}

func TestValidate_NoRoots(t *testing.T) {
	g := New(
		[]Topic{{ID: "a"}, {ID: "b"}},
		[]Prerequisite{
			{TopicID: "a", PrerequisiteID: "b"},
			{TopicID: "b", PrerequisiteID: "a"},
		},
	)
	err := g.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "no root topics found") {
		t.Errorf("error missing root report: %v", err)
	}
}

func TestResolve_ClosureSuperset(t *testing.T) {
	g := testGraph()
	r := NewResolver(g)

	required, warnings, err := r.Resolve([]string{"d"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	for _, id := range []string{"d", "b", "c", "a"} {
		if _, ok := required[id]; !ok {
			t.Errorf("required set missing %q", id)
		}
	}
}

func TestResolve_MasteryGatesExpansion(t *testing.T) {
	g := testGraph()
	r := NewResolver(g)

	// Both of d's edges carry the default 0.7 threshold; mastery at that
	// level on b and c stops the walk there.
	mastery := map[string]float64{"b": 0.7, "c": 0.7}
	required, _, err := r.Resolve([]string{"d"}, mastery)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(required) != 1 {
		t.Errorf("required = %v, want only the target", required)
	}
	if _, ok := required["d"]; !ok {
		t.Error("required set missing target d")
	}
}

func TestResolve_ThresholdIsPerEdge(t *testing.T) {
	g := testGraph()
	r := NewResolver(g)

	// The c<-a edge's explicit 0.5 threshold is satisfied, but the d<-c
	// edge's default 0.7 is not: c enters the set, a stays out.
	mastery := map[string]float64{"a": 0.5, "b": 0.7, "c": 0.6}
	required, _, err := r.Resolve([]string{"d"}, mastery)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := required["c"]; !ok {
		t.Error("c at 0.6 is below the d<-c threshold and must be required")
	}
	if _, ok := required["a"]; ok {
		t.Error("a at 0.5 satisfies the c<-a threshold and must not be required")
	}
	if _, ok := required["b"]; ok {
		t.Error("b at 0.7 satisfies the d<-b threshold and must not be required")
	}
}

func TestResolve_EmptyTargets(t *testing.T) {
	r := NewResolver(testGraph())
	required, warnings, err := r.Resolve(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(required) != 0 || len(warnings) != 0 {
		t.Errorf("got required=%v warnings=%v, want both empty", required, warnings)
	}
}

func TestResolve_DanglingEdgeWarns(t *testing.T) {
	g := New(
		[]Topic{{ID: "a"}, {ID: "b"}},
		[]Prerequisite{
			{TopicID: "b", PrerequisiteID: "a"},
			{TopicID: "b", PrerequisiteID: "ghost"},
		},
	)
	r := NewResolver(g)
	required, warnings, err := r.Resolve([]string{"b"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], `"ghost"`) {
		t.Errorf("warnings = %v, want one naming ghost", warnings)
	}
	if _, ok := required["ghost"]; ok {
		t.Error("undeclared prerequisite must not enter the required set")
	}
	if _, ok := required["a"]; !ok {
		t.Error("declared prerequisite a missing from required set")
	}
}

func TestResolve_CycleDetected(t *testing.T) {
	g := New(
		[]Topic{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		[]Prerequisite{
			{TopicID: "a", PrerequisiteID: "b"},
			{TopicID: "b", PrerequisiteID: "c"},
			{TopicID: "c", PrerequisiteID: "a"},
		},
	)
	r := NewResolver(g)
	_, _, err := r.Resolve([]string{"a"}, nil)
	var cycErr *CycleError
	if !errors.As(err, &cycErr) {
		t.Fatalf("got %v, want *CycleError", err)
	}
	if len(cycErr.Topics) == 0 {
		t.Error("cycle error names no topics")
	}
}

func TestResolve_DeepClosureOnDefaultGraph(t *testing.T) {
	_, g := Default()
	r := NewResolver(g)

	required, warnings, err := r.Resolve([]string{"quadratic_equations"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	for _, id := range []string{"quadratic_equations", "linear_equations", "algebra_basics", "arithmetic"} {
		if _, ok := required[id]; !ok {
			t.Errorf("required set missing %q", id)
		}
	}
	if _, ok := required["fractions"]; ok {
		t.Error("fractions is not on the prerequisite chain and must not be required")
	}
}
