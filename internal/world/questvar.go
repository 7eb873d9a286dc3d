package world

// QuestVars is the sparse server-side quest variable store. The server
// either replaces the whole set or patches single entries.
type QuestVars struct {
	vars map[int]int
}

func NewQuestVars() *QuestVars {
	return &QuestVars{vars: make(map[int]int)}
}

// Replace discards every variable and installs the given set.
func (q *QuestVars) Replace(vars map[int]int) {
	q.vars = make(map[int]int, len(vars))
	for k, v := range vars {
		q.vars[k] = v
	}
}

// Set patches a single variable.
func (q *QuestVars) Set(id, value int) { q.vars[id] = value }

// Get reports a variable; unknown ids read as zero.
func (q *QuestVars) Get(id int) (int, bool) {
	v, ok := q.vars[id]
	return v, ok
}

// Len reports how many variables are set.
func (q *QuestVars) Len() int { return len(q.vars) }
