package topicgraph

// Default returns the built-in mathematics graph, used when no graph
// config file is supplied. Thresholds and weights use the defaults.
func Default() (string, *Graph) {
	topics := []Topic{
		{ID: "arithmetic", Name: "Arithmetic Foundations"},
		{ID: "fractions", Name: "Fractions"},
		{ID: "decimals", Name: "Decimals"},
		{ID: "ratios_proportions", Name: "Ratios & Proportions"},
		{ID: "negative_numbers", Name: "Negative Numbers"},
		{ID: "exponents", Name: "Exponents & Powers"},
		{ID: "algebra_basics", Name: "Algebra Basics"},
		{ID: "linear_equations", Name: "Linear Equations"},
		{ID: "inequalities", Name: "Inequalities"},
		{ID: "systems_of_equations", Name: "Systems of Equations"},
		{ID: "polynomials", Name: "Polynomials"},
		{ID: "factoring", Name: "Factoring"},
		{ID: "quadratic_equations", Name: "Quadratic Equations"},
		{ID: "functions", Name: "Functions & Graphing"},
	}

	edges := []Prerequisite{
		{TopicID: "fractions", PrerequisiteID: "arithmetic"},
		{TopicID: "decimals", PrerequisiteID: "fractions"},
		{TopicID: "ratios_proportions", PrerequisiteID: "fractions"},
		{TopicID: "negative_numbers", PrerequisiteID: "arithmetic"},
		{TopicID: "exponents", PrerequisiteID: "negative_numbers"},
		{TopicID: "algebra_basics", PrerequisiteID: "arithmetic"},
		{TopicID: "algebra_basics", PrerequisiteID: "negative_numbers"},
		{TopicID: "linear_equations", PrerequisiteID: "algebra_basics"},
		{TopicID: "inequalities", PrerequisiteID: "linear_equations"},
		{TopicID: "systems_of_equations", PrerequisiteID: "linear_equations"},
		{TopicID: "polynomials", PrerequisiteID: "algebra_basics", MasteryThreshold: 0.6},
		{TopicID: "polynomials", PrerequisiteID: "exponents"},
		{TopicID: "factoring", PrerequisiteID: "polynomials"},
		{TopicID: "quadratic_equations", PrerequisiteID: "linear_equations"},
		{TopicID: "quadratic_equations", PrerequisiteID: "factoring", MasteryThreshold: 0.6},
		{TopicID: "functions", PrerequisiteID: "linear_equations"},
	}

	return "mathematics", New(topics, edges)
}
