package candidate

import (
	"github.com/google/uuid"
)

// Profile is the read-only candidate input owned by the persistence layer.
// Optional [0,1] signals are pointers: absence is substituted with a documented
// default by the scoring layer, never treated as an error.
type Profile struct {
	ID             uuid.UUID          `json:"id"`
	FullName       string             `json:"full_name"`
	Skills         []string           `json:"skills"`
	Certifications []string           `json:"certifications"`
	Experience     []ExperienceRecord `json:"experience"`
	TotalYears     float64            `json:"total_years"`
	SoftSkills     SoftSkillSet       `json:"soft_skills"`
	Technical      TechnicalSignals   `json:"technical"`
	ExperienceFit  ExperienceSignals  `json:"experience_fit"`
	Culture        CultureProfile     `json:"culture"`
	Growth         GrowthIndicators   `json:"growth"`
	Performance    PerformanceSignals `json:"performance"`
	Stability      StabilitySignals   `json:"stability"`
	DEI            DEIAttributes      `json:"dei"`
	Market         MarketSignals      `json:"market"`
	ExpectedSalary float64            `json:"expected_salary"`
	Address        string             `json:"address"`
}

type ExperienceRecord struct {
	Title   string  `json:"title"`
	Company string  `json:"company"`
	Years   float64 `json:"years"`
}

type SoftSkillSet struct {
	Communication         *float64 `json:"communication,omitempty"`
	Teamwork              *float64 `json:"teamwork,omitempty"`
	Leadership            *float64 `json:"leadership,omitempty"`
	ProblemSolving        *float64 `json:"problem_solving,omitempty"`
	Adaptability          *float64 `json:"adaptability,omitempty"`
	EmotionalIntelligence *float64 `json:"emotional_intelligence,omitempty"`
	Creativity            *float64 `json:"creativity,omitempty"`
	ConflictResolution    *float64 `json:"conflict_resolution,omitempty"`
}

type TechnicalSignals struct {
	ToolProficiency  *float64 `json:"tool_proficiency,omitempty"`
	DomainExpertise  *float64 `json:"domain_expertise,omitempty"`
	TechnicalDepth   *float64 `json:"technical_depth,omitempty"`
	TechnicalBreadth *float64 `json:"technical_breadth,omitempty"`
	SkillRecency     *float64 `json:"skill_recency,omitempty"`
	LearningVelocity *float64 `json:"learning_velocity,omitempty"`
}

type ExperienceSignals struct {
	RoleSimilarity        *float64 `json:"role_similarity,omitempty"`
	IndustryMatch         *float64 `json:"industry_match,omitempty"`
	SeniorityAlignment    *float64 `json:"seniority_alignment,omitempty"`
	ScopeOfResponsibility *float64 `json:"scope_of_responsibility,omitempty"`
	ProjectComplexity     *float64 `json:"project_complexity,omitempty"`
	TeamSizeFit           *float64 `json:"team_size_fit,omitempty"`
	DomainTenure          *float64 `json:"domain_tenure,omitempty"`
}

type CultureProfile struct {
	Values                  []string `json:"values"`
	WorkStyleFit            *float64 `json:"work_style_fit,omitempty"`
	CollaborationPreference *float64 `json:"collaboration_preference,omitempty"`
	PaceAlignment           *float64 `json:"pace_alignment,omitempty"`
	MissionAffinity         *float64 `json:"mission_affinity,omitempty"`
	FeedbackCultureFit      *float64 `json:"feedback_culture_fit,omitempty"`
	AutonomyFit             *float64 `json:"autonomy_fit,omitempty"`
	FormalityFit            *float64 `json:"formality_fit,omitempty"`
}

type GrowthIndicators struct {
	LearningAgility      *float64 `json:"learning_agility,omitempty"`
	CareerAmbition       *float64 `json:"career_ambition,omitempty"`
	SkillAcquisitionRate *float64 `json:"skill_acquisition_rate,omitempty"`
	StretchReadiness     *float64 `json:"stretch_readiness,omitempty"`
	MentorshipOpenness   *float64 `json:"mentorship_openness,omitempty"`
	GoalClarity          *float64 `json:"goal_clarity,omitempty"`
	UpskillingHistory    *float64 `json:"upskilling_history,omitempty"`
	PotentialCeiling     *float64 `json:"potential_ceiling,omitempty"`
}

type PerformanceSignals struct {
	AchievementDensity  *float64 `json:"achievement_density,omitempty"`
	ImpactEvidence      *float64 `json:"impact_evidence,omitempty"`
	Consistency         *float64 `json:"consistency,omitempty"`
	Recognition         *float64 `json:"recognition,omitempty"`
	DeliveryReliability *float64 `json:"delivery_reliability,omitempty"`
	QualityFocus        *float64 `json:"quality_focus,omitempty"`
	Initiative          *float64 `json:"initiative,omitempty"`
	OutcomeOrientation  *float64 `json:"outcome_orientation,omitempty"`
}

type StabilitySignals struct {
	TenurePattern       *float64 `json:"tenure_pattern,omitempty"`
	GeographicStability *float64 `json:"geographic_stability,omitempty"`
	CareerCoherence     *float64 `json:"career_coherence,omitempty"`
	CommitmentSignals   *float64 `json:"commitment_signals,omitempty"`
	RelocationRisk      *float64 `json:"relocation_risk,omitempty"`
	IndustryLoyalty     *float64 `json:"industry_loyalty,omitempty"`
	RoleStability       *float64 `json:"role_stability,omitempty"`
	LifeStageStability  *float64 `json:"life_stage_stability,omitempty"`
}

// DEIAttributes carries self-reported signals only. All fields are optional
// and advisory; they never gate a candidate.
type DEIAttributes struct {
	Diversity DiversityDimensions `json:"diversity"`
	Equity    EquityIndicators    `json:"equity"`
	Inclusion InclusionFactors    `json:"inclusion"`
}

type DiversityDimensions struct {
	CulturalBackground       *float64 `json:"cultural_background,omitempty"`
	LanguageDiversity        *float64 `json:"language_diversity,omitempty"`
	EducationalPath          *float64 `json:"educational_path,omitempty"`
	GeographicOrigin         *float64 `json:"geographic_origin,omitempty"`
	CareerPathDiversity      *float64 `json:"career_path_diversity,omitempty"`
	IndustryBreadth          *float64 `json:"industry_breadth,omitempty"`
	SocioeconomicPerspective *float64 `json:"socioeconomic_perspective,omitempty"`
	GenerationalPerspective  *float64 `json:"generational_perspective,omitempty"`
	CognitiveStyle           *float64 `json:"cognitive_style,omitempty"`
	ExperientialRange        *float64 `json:"experiential_range,omitempty"`
	CommunityInvolvement     *float64 `json:"community_involvement,omitempty"`
	PerspectiveContribution  *float64 `json:"perspective_contribution,omitempty"`
}

type EquityIndicators struct {
	AccessToOpportunity *float64 `json:"access_to_opportunity,omitempty"`
	AdvancementEquity   *float64 `json:"advancement_equity,omitempty"`
	CompensationEquity  *float64 `json:"compensation_equity,omitempty"`
	RecognitionEquity   *float64 `json:"recognition_equity,omitempty"`
	DevelopmentAccess   *float64 `json:"development_access,omitempty"`
	SponsorshipAccess   *float64 `json:"sponsorship_access,omitempty"`
	WorkloadEquity      *float64 `json:"workload_equity,omitempty"`
	EvaluationFairness  *float64 `json:"evaluation_fairness,omitempty"`
}

type InclusionFactors struct {
	BelongingSignal      *float64 `json:"belonging_signal,omitempty"`
	VoiceAndInput        *float64 `json:"voice_and_input,omitempty"`
	CollaborationComfort *float64 `json:"collaboration_comfort,omitempty"`
	PsychologicalSafety  *float64 `json:"psychological_safety,omitempty"`
	NetworkInclusion     *float64 `json:"network_inclusion,omitempty"`
	MentoringInclusion   *float64 `json:"mentoring_inclusion,omitempty"`
	DecisionInclusion    *float64 `json:"decision_inclusion,omitempty"`
	CulturalCelebration  *float64 `json:"cultural_celebration,omitempty"`
}

type MarketSignals struct {
	MarketDemandFit        *float64 `json:"market_demand_fit,omitempty"`
	Availability           *float64 `json:"availability,omitempty"`
	OfferCompetitiveness   *float64 `json:"offer_competitiveness,omitempty"`
	NoticePeriodFit        *float64 `json:"notice_period_fit,omitempty"`
	LocationMarketFit      *float64 `json:"location_market_fit,omitempty"`
	ProfileRarity          *float64 `json:"profile_rarity,omitempty"`
	NegotiationFlexibility *float64 `json:"negotiation_flexibility,omitempty"`
}
