package world

import "testing"

func TestRelationsPermissions(t *testing.T) {
	r := NewRelations()
	r.Set("Troll", RelationIgnored)
	r.Set("Lurker", RelationDisregarded)
	r.Set("Pal", RelationFriend)

	if r.Permitted("Troll", PermitSpeech) {
		t.Fatal("ignored player may speak")
	}
	if r.Permitted("Lurker", PermitWhisper) {
		t.Fatal("disregarded player may whisper")
	}
	if !r.Permitted("Lurker", PermitEmote) {
		t.Fatal("disregarded player should keep emotes")
	}
	if !r.Permitted("Pal", PermitTrade) {
		t.Fatal("friend denied trade")
	}
	if !r.Permitted("Stranger", PermitSpeech) {
		t.Fatal("unknown player denied default speech")
	}

	// lookups ignore case
	if r.Get("troll") != RelationIgnored {
		t.Fatal("relation lookup should be case-insensitive")
	}

	r.Set("Troll", RelationNeutral)
	if !r.Permitted("Troll", PermitSpeech) {
		t.Fatal("neutral reset did not restore defaults")
	}
}

func TestRelationsDefaultPermissions(t *testing.T) {
	r := NewRelations()
	r.SetDefaultPermissions(PermitEmote)
	if r.Permitted("Stranger", PermitTrade) {
		t.Fatal("stranger permitted trade against tightened default")
	}
	if !r.Permitted("Stranger", PermitEmote) {
		t.Fatal("stranger denied the one default permission")
	}
}

func TestQuestVarsReplaceAndPatch(t *testing.T) {
	q := NewQuestVars()
	q.Replace(map[int]int{100: 1, 101: 2})
	q.Set(102, 7)

	if v, ok := q.Get(102); !ok || v != 7 {
		t.Fatalf("patched var = %d,%v", v, ok)
	}

	q.Replace(map[int]int{200: 3})
	if _, ok := q.Get(100); ok {
		t.Fatal("replace kept a stale var")
	}
	if q.Len() != 1 {
		t.Fatalf("len = %d after replace, want 1", q.Len())
	}
}
