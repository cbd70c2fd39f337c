// Package scoring implements the deterministic resume analysis pipeline:
// text normalization, dictionary-driven signal extraction, score aggregation
// and insight generation. Everything in this package is a pure function of
// its inputs; the dictionary and stop-word set are built once and only read.
package scoring

// Dictionary holds the curated phrase lists used for skill matching.
// All phrases are lowercase and already in normalized form (no punctuation),
// so they can be matched by literal substring containment against normalized
// text. Treat values as immutable after construction.
type Dictionary struct {
	Technical      []string
	Soft           []string
	Certifications []string

	keywordSet map[string]struct{}
}

// DefaultDictionary returns the built-in skills dictionary.
func DefaultDictionary() *Dictionary {
	d := &Dictionary{
		Technical: []string{
			"javascript", "typescript", "python", "java", "golang", "rust",
			"ruby", "php", "swift", "kotlin", "scala",
			"react", "angular", "vue", "svelte", "node", "express",
			"django", "flask", "spring", "laravel", "rails",
			"html", "css", "sass", "graphql", "rest api", "grpc",
			"sql", "mysql", "postgresql", "mongodb", "redis",
			"elasticsearch", "kafka", "rabbitmq",
			"aws", "azure", "gcp", "docker", "kubernetes", "terraform",
			"ansible", "jenkins", "ci cd", "git", "linux", "bash",
			"machine learning", "deep learning", "data analysis",
			"pandas", "numpy", "tensorflow", "pytorch",
			"microservices", "oauth", "agile", "scrum", "jira",
		},
		Soft: []string{
			"leadership", "communication", "teamwork", "collaboration",
			"problem solving", "critical thinking", "time management",
			"project management", "adaptability", "mentoring",
			"negotiation", "public speaking", "conflict resolution",
			"attention to detail", "decision making",
		},
		Certifications: []string{
			"aws certified", "azure certified", "google cloud certified",
			"certified kubernetes", "pmp", "scrum master", "cissp",
			"ccna", "comptia", "itil",
		},
	}
	d.keywordSet = make(map[string]struct{}, len(d.Technical)+len(d.Soft))
	for _, p := range d.Technical {
		d.keywordSet[p] = struct{}{}
	}
	for _, p := range d.Soft {
		d.keywordSet[p] = struct{}{}
	}
	return d
}

// IsKeyword reports whether token is a technical or soft dictionary phrase.
func (d *Dictionary) IsKeyword(token string) bool {
	_, ok := d.keywordSet[token]
	return ok
}

// stopWords excludes generic job-posting vocabulary from keyword-gap
// candidates. Lowercase, checked against whole tokens.
var stopWords = map[string]struct{}{
	"with": {}, "that": {}, "this": {}, "have": {}, "from": {},
	"will": {}, "your": {}, "what": {}, "when": {}, "them": {},
	"they": {}, "their": {}, "been": {}, "more": {}, "than": {},
	"work": {}, "team": {}, "years": {}, "experience": {},
	"skills": {}, "strong": {}, "ability": {}, "knowledge": {},
	"required": {}, "preferred": {}, "including": {}, "using": {},
}

// IsStopWord reports whether token is in the built-in stop-word set.
func IsStopWord(token string) bool {
	_, ok := stopWords[token]
	return ok
}
