package rubric

import "github.com/Yang-domain/simulation-for-nursing-education/pkg"

// The checklist is a fixed 24-item adaptation of the Kalamazoo essential
// elements communication checklist, grouped into seven sections. It is
// static reference data and never mutated at runtime.

const (
	SectionA pkg.Section = "A"
	SectionB pkg.Section = "B"
	SectionC pkg.Section = "C"
	SectionD pkg.Section = "D"
	SectionE pkg.Section = "E"
	SectionF pkg.Section = "F"
	SectionG pkg.Section = "G"
)

// Sections lists the section codes in checklist order.
var Sections = []pkg.Section{
	SectionA, SectionB, SectionC, SectionD, SectionE, SectionF, SectionG,
}

// SectionLabels maps each section code to its display name.
var SectionLabels = map[pkg.Section]string{
	SectionA: "Builds a relationship",
	SectionB: "Opens the discussion",
	SectionC: "Gathers information",
	SectionD: "Understands the patient's perspective",
	SectionE: "Shares information",
	SectionF: "Reaches agreement",
	SectionG: "Provides closure",
}

// ItemDefinition is one fixed checklist row.
type ItemDefinition struct {
	ID      int
	Section pkg.Section
	Label   string
}

// Items holds the 24 checklist rows in id order.
var Items = []ItemDefinition{
	{1, SectionA, "Greets the patient and introduces self, stating name and role"},
	{2, SectionA, "Shows interest in the patient as a person, not only the condition"},
	{3, SectionA, "Maintains appropriate eye contact throughout the encounter"},
	{4, SectionB, "Uses welcoming body language and an open posture"},
	{5, SectionB, "Allows the patient to complete their opening statement without interrupting"},
	{6, SectionB, "Asks whether there are additional concerns beyond the first one raised"},
	{7, SectionC, "Begins information gathering with open-ended questions"},
	{8, SectionC, "Clarifies symptom details (onset, quality, severity, timing) systematically"},
	{9, SectionC, "Summarizes the patient's account and checks it for accuracy"},
	{10, SectionC, "Signposts transitions between topics"},
	{11, SectionD, "Explores the impact of the problem on the patient's daily life"},
	{12, SectionD, "Elicits the patient's own beliefs and concerns about the problem"},
	{13, SectionD, "Responds to emotional cues with explicit empathy"},
	{14, SectionE, "Uses language the patient can understand, avoiding jargon"},
	{15, SectionE, "Checks the patient's current understanding before explaining"},
	{16, SectionE, "Explains findings and the plan of care with clear rationale"},
	{17, SectionE, "Invites questions and answers them directly"},
	{18, SectionF, "Involves the patient in decisions to the extent they wish"},
	{19, SectionF, "Checks the patient's willingness and ability to follow the plan"},
	{20, SectionF, "Identifies and addresses barriers to carrying out the plan"},
	{21, SectionG, "Asks whether the patient has remaining questions or concerns"},
	{22, SectionG, "Uses teach-back to confirm understanding of key information"},
	{23, SectionG, "Summarizes the encounter and agrees on next steps"},
	{24, SectionG, "Closes the conversation respectfully"},
}

// sectionRanges derives a section from an item id when the model omitted it.
var sectionRanges = []struct {
	lo, hi  int
	section pkg.Section
}{
	{1, 3, SectionA},
	{4, 6, SectionB},
	{7, 10, SectionC},
	{11, 13, SectionD},
	{14, 17, SectionE},
	{18, 20, SectionF},
	{21, 24, SectionG},
}

// SectionForID returns the section an item id belongs to. The second return
// is false for ids outside 1–24.
func SectionForID(id int) (pkg.Section, bool) {
	for _, r := range sectionRanges {
		if id >= r.lo && id <= r.hi {
			return r.section, true
		}
	}
	return "", false
}

// LabelForID returns the fixed label for an item id, or "" when unknown.
func LabelForID(id int) string {
	if id < 1 || id > len(Items) {
		return ""
	}
	return Items[id-1].Label
}
