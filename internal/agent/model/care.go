package model

// UserInfo identifies the family member talking to the assistant.
type UserInfo struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"` // 자녀, 배우자, 손자녀, 기타
}

// ParentInfo describes the elder receiving care.
type ParentInfo struct {
	Name        string `json:"name"`
	BirthDate   string `json:"birthDate"`
	Age         int    `json:"age"`
	Gender      string `json:"gender"` // 남, 여
	Address     string `json:"address"`
	Phone       string `json:"phone,omitempty"`
	LivingAlone bool   `json:"livingAlone"`
}

// ADL ability levels shared by the HealthStatus fields.
const (
	ADLIndependent = "independent"
	ADLAssisted    = "assisted"
	ADLDependent   = "dependent"
)

// Cognitive state levels.
const (
	CognitiveNormal   = "normal"
	CognitiveMild     = "mild"
	CognitiveModerate = "moderate"
	CognitiveSevere   = "severe"
)

// HealthStatus captures the elder's activities of daily living and cognition.
type HealthStatus struct {
	Mobility          string   `json:"mobility"`
	Eating            string   `json:"eating"`
	Toileting         string   `json:"toileting"`
	Bathing           string   `json:"bathing"`
	Dressing          string   `json:"dressing"`
	CognitiveState    string   `json:"cognitiveState"`
	RecentIncident    string   `json:"recentIncident,omitempty"`
	ChronicConditions []string `json:"chronicConditions"`
}

// CareLevelDiagnosis is the estimated long-term care grade with scores.
type CareLevelDiagnosis struct {
	EstimatedGrade   string `json:"estimatedGrade"` // 1등급..5등급, 인지지원등급, 등급외
	ADLScore         int    `json:"adlScore"`
	CognitiveScore   int    `json:"cognitiveScore"`
	NursingNeedScore int    `json:"nursingNeedScore"`
	Recommendation   string `json:"recommendation"`
	UrgencyLevel     string `json:"urgencyLevel"` // low, medium, high, critical
}

// WelfareBenefit is a government support program matched to the family.
type WelfareBenefit struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Category       string   `json:"category"` // 소득지원, 돌봄서비스, 의료지원, 주거지원, 교통지원, 기타
	Description    string   `json:"description"`
	Eligibility    []string `json:"eligibility"`
	MonthlyAmount  int      `json:"monthlyAmount,omitempty"`
	ApplicationURL string   `json:"applicationUrl,omitempty"`
	Agency         string   `json:"agency"`
	Phone          string   `json:"phone,omitempty"`
}

// FeeRange is a monthly fee band in KRW.
type FeeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// CareFacility is a long-term care facility candidate.
type CareFacility struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	Type           string              `json:"type"` // 주간보호센터, 요양원, 재가서비스, 양로원, 요양병원
	Address        string              `json:"address"`
	Distance       float64             `json:"distance,omitempty"`
	Rating         float64             `json:"rating"`
	ReviewCount    int                 `json:"reviewCount"`
	MonthlyFee     FeeRange            `json:"monthlyFee"`
	Specialties    []string            `json:"specialties"`
	AvailableSlots bool                `json:"availableSlots"`
	Phone          string              `json:"phone"`
	Website        string              `json:"website,omitempty"`
	DetailInfo     *FacilityDetailInfo `json:"detailInfo,omitempty"`
}

// FacilityDetailInfo holds extended registry data for a facility.
type FacilityDetailInfo struct {
	TotalCapacity    int      `json:"totalCapacity,omitempty"`
	CurrentOccupancy int      `json:"currentOccupancy,omitempty"`
	EmployeeCount    int      `json:"employeeCount,omitempty"`
	Representative   string   `json:"representative,omitempty"`
	EstablishedDate  string   `json:"establishedDate,omitempty"`
	Homepage         string   `json:"homepage,omitempty"`
	Programs         []string `json:"programs,omitempty"`
	Latitude         float64  `json:"latitude,omitempty"`
	Longitude        float64  `json:"longitude,omitempty"`
	Grade            string   `json:"grade,omitempty"` // 평가등급 A~E
	EstablishType    string   `json:"establishType,omitempty"`
}

// Appointment is a scheduled visit, tour, or consultation.
type Appointment struct {
	ID       string `json:"id"`
	Type     string `json:"type"` // 방문조사, 시설견학, 상담예약, 서비스시작
	Date     string `json:"date"`
	Time     string `json:"time"`
	Location string `json:"location"`
	Status   string `json:"status"` // scheduled, completed, cancelled
	Notes    string `json:"notes,omitempty"`
}

// FamilyEvent is a shared care-calendar entry.
type FamilyEvent struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	Time      string `json:"time,omitempty"`
	Assignee  string `json:"assignee,omitempty"`
	Type      string `json:"type"` // 방문, 병원, 서비스, 기타
	Recurring string `json:"recurring,omitempty"`
}

// Care journey steps.
const (
	StepInitial          = "initial"
	StepHealthAssessment = "health_assessment"
	StepDiagnosis        = "diagnosis"
	StepGradeApplication = "grade_application"
	StepEmergencyCare    = "emergency_care"
	StepBenefitDiscovery = "benefit_discovery"
	StepFacilitySearch   = "facility_search"
	StepFamilyCalendar   = "family_calendar"
	StepCompleted        = "completed"
)

// MaxCompareFacilities caps the side-by-side comparison list.
const MaxCompareFacilities = 3

// CareState is the full client-held state of one family's care journey.
// The client remains the system of record; the server returns patches
// merged into the state it received with each request.
type CareState struct {
	UserInfo           *UserInfo           `json:"userInfo,omitempty"`
	ParentInfo         *ParentInfo         `json:"parentInfo,omitempty"`
	HealthStatus       *HealthStatus       `json:"healthStatus,omitempty"`
	Diagnosis          *CareLevelDiagnosis `json:"diagnosis,omitempty"`
	DiscoveredBenefits []WelfareBenefit    `json:"discoveredBenefits"`
	NearbyFacilities   []CareFacility      `json:"nearbyFacilities"`
	Appointments       []Appointment       `json:"appointments"`
	FamilyEvents       []FamilyEvent       `json:"familyEvents"`
	CurrentStep        string              `json:"currentStep"`
	CompletedSteps     []string            `json:"completedSteps"`
	FavoriteFacilities []string            `json:"favoriteFacilities"`
	CompareFacilities  []string            `json:"compareFacilities"`
	SelectedFacility   *CareFacility       `json:"selectedFacility,omitempty"`
}

// NewCareState returns an empty state positioned at the initial step.
func NewCareState() *CareState {
	return &CareState{
		DiscoveredBenefits: []WelfareBenefit{},
		NearbyFacilities:   []CareFacility{},
		Appointments:       []Appointment{},
		FamilyEvents:       []FamilyEvent{},
		CurrentStep:        StepInitial,
		CompletedSteps:     []string{},
		FavoriteFacilities: []string{},
		CompareFacilities:  []string{},
	}
}

// CareStatePatch is a partial update produced by a tool handler. Nil fields
// leave the corresponding state field untouched; non-nil slice fields replace
// the existing slice wholesale.
type CareStatePatch struct {
	UserInfo           *UserInfo           `json:"userInfo,omitempty"`
	ParentInfo         *ParentInfo         `json:"parentInfo,omitempty"`
	HealthStatus       *HealthStatus       `json:"healthStatus,omitempty"`
	Diagnosis          *CareLevelDiagnosis `json:"diagnosis,omitempty"`
	DiscoveredBenefits []WelfareBenefit    `json:"discoveredBenefits,omitempty"`
	NearbyFacilities   []CareFacility      `json:"nearbyFacilities,omitempty"`
	Appointments       []Appointment       `json:"appointments,omitempty"`
	FamilyEvents       []FamilyEvent       `json:"familyEvents,omitempty"`
	CurrentStep        string              `json:"currentStep,omitempty"`
	CompletedSteps     []string            `json:"completedSteps,omitempty"`
	FavoriteFacilities []string            `json:"favoriteFacilities,omitempty"`
	CompareFacilities  []string            `json:"compareFacilities,omitempty"`
	SelectedFacility   *CareFacility       `json:"selectedFacility,omitempty"`
}

// IsZero reports whether the patch changes nothing.
func (p *CareStatePatch) IsZero() bool {
	if p == nil {
		return true
	}
	return p.UserInfo == nil && p.ParentInfo == nil && p.HealthStatus == nil &&
		p.Diagnosis == nil && p.DiscoveredBenefits == nil && p.NearbyFacilities == nil &&
		p.Appointments == nil && p.FamilyEvents == nil && p.CurrentStep == "" &&
		p.CompletedSteps == nil && p.FavoriteFacilities == nil &&
		p.CompareFacilities == nil && p.SelectedFacility == nil
}

// Apply merges the patch into the state. The merge is shallow: present
// fields replace the previous value, absent fields are preserved.
func (s *CareState) Apply(p *CareStatePatch) {
	if p == nil {
		return
	}
	if p.UserInfo != nil {
		s.UserInfo = p.UserInfo
	}
	if p.ParentInfo != nil {
		s.ParentInfo = p.ParentInfo
	}
	if p.HealthStatus != nil {
		s.HealthStatus = p.HealthStatus
	}
	if p.Diagnosis != nil {
		s.Diagnosis = p.Diagnosis
	}
	if p.DiscoveredBenefits != nil {
		s.DiscoveredBenefits = p.DiscoveredBenefits
	}
	if p.NearbyFacilities != nil {
		s.NearbyFacilities = p.NearbyFacilities
	}
	if p.Appointments != nil {
		s.Appointments = p.Appointments
	}
	if p.FamilyEvents != nil {
		s.FamilyEvents = p.FamilyEvents
	}
	if p.CurrentStep != "" {
		s.CurrentStep = p.CurrentStep
	}
	if p.CompletedSteps != nil {
		s.CompletedSteps = p.CompletedSteps
	}
	if p.FavoriteFacilities != nil {
		s.FavoriteFacilities = p.FavoriteFacilities
	}
	if p.CompareFacilities != nil {
		s.CompareFacilities = p.CompareFacilities
	}
	if p.SelectedFacility != nil {
		s.SelectedFacility = p.SelectedFacility
	}
}

// WithStepCompleted marks step as finished and moves to next, avoiding
// duplicates in the completed list.
func (s *CareState) WithStepCompleted(step, next string) *CareStatePatch {
	completed := append([]string{}, s.CompletedSteps...)
	found := false
	for _, c := range completed {
		if c == step {
			found = true
			break
		}
	}
	if !found {
		completed = append(completed, step)
	}
	return &CareStatePatch{CurrentStep: next, CompletedSteps: completed}
}

// ToggleFavoriteFacility adds the facility to the favorite set, or removes
// it when already present. Toggling twice restores the original membership.
func (s *CareState) ToggleFavoriteFacility(facilityID string) {
	for i, id := range s.FavoriteFacilities {
		if id == facilityID {
			s.FavoriteFacilities = append(s.FavoriteFacilities[:i], s.FavoriteFacilities[i+1:]...)
			return
		}
	}
	s.FavoriteFacilities = append(s.FavoriteFacilities, facilityID)
}

// ToggleCompareFacility adds the facility to the comparison set, or removes
// it when already present. A fourth addition is a silent no-op.
func (s *CareState) ToggleCompareFacility(facilityID string) {
	for i, id := range s.CompareFacilities {
		if id == facilityID {
			s.CompareFacilities = append(s.CompareFacilities[:i], s.CompareFacilities[i+1:]...)
			return
		}
	}
	if len(s.CompareFacilities) >= MaxCompareFacilities {
		return
	}
	s.CompareFacilities = append(s.CompareFacilities, facilityID)
}

// ClearCompareFacilities empties the comparison set.
func (s *CareState) ClearCompareFacilities() {
	s.CompareFacilities = []string{}
}

// SelectFacility marks one facility as the current focus of the consultation.
func (s *CareState) SelectFacility(f *CareFacility) {
	s.SelectedFacility = f
}

// DisplayItem is one row of a structured tool-result card.
type DisplayItem struct {
	Icon      string `json:"icon"`
	Label     string `json:"label"`
	Value     string `json:"value"`
	Highlight bool   `json:"highlight,omitempty"`
}

// DisplayData describes how the client should render a tool result.
type DisplayData struct {
	Type  string        `json:"type"` // diagnosis, benefits, facilities, appointment, calendar, document, summary
	Title string        `json:"title"`
	Items []DisplayItem `json:"items"`
}
