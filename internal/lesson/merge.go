package lesson

import "time"

// Merge reassembles the skeleton and enhancement results into the
// final package. Every skeleton item appears exactly once and in
// original order; items whose enhancement failed carry the skeleton
// text as their plain fallback, so a total enhancement failure still
// yields a complete, displayable lesson.
func Merge(d Descriptor, skel *ContentSkeleton, results map[SectionKind]*SectionResult, model string) *LessonPackage {
	pkg := &LessonPackage{
		Descriptor: d,
		Title:      skel.Title,
		Plan:       skel.Plan,
		Practice:   skel.Practice,
		Culture:    skel.CultureNotes,
		Stages:     skel.Stages,
		Status:     make(map[SectionKind]SectionStatus),
		Model:      model,
		CreatedAt:  time.Now().UTC(),
	}

	reading := results[SectionReading]
	pkg.Reading = ReadingSection{
		Title: skel.Reading.Title,
		Body:  block(skel.Reading.Body, reading, 0),
	}
	pkg.Status[SectionReading] = status(reading)

	dialogue := results[SectionDialogue]
	pkg.Dialogue = make([]DialogueText, len(skel.Dialogue))
	for i, line := range skel.Dialogue {
		pkg.Dialogue[i] = DialogueText{
			Speaker: line.Speaker,
			Text:    block(line.Text, dialogue, i),
		}
	}
	pkg.Status[SectionDialogue] = status(dialogue)

	grammar := results[SectionGrammar]
	pkg.Grammar = make([]GrammarText, len(skel.GrammarPoints))
	flat := 0
	for i, g := range skel.GrammarPoints {
		gt := GrammarText{
			Pattern:     g.Pattern,
			Explanation: g.Explanation,
			Examples:    make([]TextBlock, len(g.Examples)),
		}
		for j, example := range g.Examples {
			gt.Examples[j] = block(example, grammar, flat)
			flat++
		}
		pkg.Grammar[i] = gt
	}
	pkg.Status[SectionGrammar] = status(grammar)

	return pkg
}

// block renders one item: rich when its enhancement succeeded, plain
// skeleton text otherwise.
func block(plain string, section *SectionResult, i int) TextBlock {
	if section != nil && i < len(section.Items) && section.Items[i].Rich != nil {
		return TextBlock{Plain: plain, Rich: section.Items[i].Rich}
	}
	return TextBlock{Plain: plain}
}

func status(section *SectionResult) SectionStatus {
	if section == nil {
		return StatusUnenhanced
	}
	return section.Status()
}
