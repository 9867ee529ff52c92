package core

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Yang-domain/simulation-for-nursing-education/internal/rubric"
	"github.com/Yang-domain/simulation-for-nursing-education/pkg"
)

// prompts.go holds the Korean system prompts for scenario generation,
// patient simulation and debriefing, plus the builders that fold request
// data into the user input. Keeping them in one file makes them easy to
// tweak without touching the services. Each default can be overridden via
// configuration.

const (
	// ScenarioPrompt instructs the model to produce one nursing practice
	// scenario as strict JSON so the server can parse it directly.
	ScenarioPrompt = "당신은 간호 교육용 시뮬레이션 시나리오 작성자입니다. " +
		"간호대학생이 환자와의 의사소통을 연습할 수 있는 임상 시나리오를 하나 생성하세요. " +
		"반드시 JSON 객체 하나만 출력하세요. 형식: " +
		`{"title":"시나리오 제목","text":"환자 정보와 상황 설명(나이, 성별, 주호소, 관련 배경 포함)","goal":"이 시나리오의 의사소통 학습 목표"}` +
		" JSON 외의 다른 텍스트는 출력하지 마세요."

	// PatientGuidePrompt makes the model stay in character as the patient.
	PatientGuidePrompt = "당신은 간호 교육 시뮬레이션의 가상 환자입니다. " +
		"주어진 시나리오의 환자가 되어 간호학생의 말에 환자로서만 대답하세요. " +
		"의학 지식을 가르치거나 평가하지 말고, 시나리오에 맞는 감정과 증상을 자연스럽게 표현하세요. " +
		"대답은 한두 문장으로 짧게, 한국어로 하세요."

	// DebriefPrompt asks for a Kalamazoo checklist evaluation as strict
	// JSON matching the rubric item shape the server sanitizes.
	debriefPromptHeader = "당신은 간호 의사소통 교육 전문가입니다. " +
		"학생과 가상 환자의 대화를 칼라마주(Kalamazoo) 의사소통 체크리스트로 평가하세요. " +
		"아래 24개 항목 각각에 대해 category를 다음 네 값 중 하나로 판정하세요: " +
		`"Done well", "Needs improvements", "Not done", "Not applicable". ` +
		"반드시 JSON 객체 하나만 출력하세요. 형식: " +
		`{"summary":"전체 총평(한국어)","items":[{"id":1,"category":"Done well","comment":"근거(한국어)"}]}` +
		" 체크리스트:\n"
)

// DebriefPrompt is the full debrief system prompt including the checklist
// item labels, so the model judges the same 24 rows the server aggregates.
var DebriefPrompt = buildDebriefPrompt()

func buildDebriefPrompt() string {
	var b strings.Builder
	b.WriteString(debriefPromptHeader)
	for _, def := range rubric.Items {
		fmt.Fprintf(&b, "%d. [%s %s] %s\n", def.ID, def.Section, rubric.SectionLabels[def.Section], def.Label)
	}
	return b.String()
}

// buildScenarioInput packages optional caller hints for the generator.
func buildScenarioInput(extras map[string]any) string {
	blob, _ := json.Marshal(extras)
	return fmt.Sprintf("시나리오를 생성하라. 참고 정보: %s", blob)
}

// buildPatientInput folds the scenario, conversation so far, and the
// student's latest utterance into one user message.
func buildPatientInput(scenario string, history []pkg.ChatTurn, message string) string {
	blob, _ := json.Marshal(history)
	return fmt.Sprintf("현재 시나리오: %s\n대화 이력: %s\n학생 발화: %s", scenario, blob, message)
}

// buildDebriefInput packages the whole session for checklist evaluation.
func buildDebriefInput(student pkg.Student, scenario pkg.Scenario, history []pkg.ChatTurn) string {
	hist, _ := json.Marshal(history)
	scen, _ := json.Marshal(scenario)
	return fmt.Sprintf("학생: %s(%s)\n시나리오: %s\n대화 이력: %s\n칼라마주 체크리스트 평가를 수행하라.",
		student.Name, student.ID, scen, hist)
}
