package playht

// VoiceEngine selects the Play.ht voice engine used for synthesis.
// PlayHT2.0 is recommended for new work.
type VoiceEngine string

const (
	PlayHTV1      VoiceEngine = "PlayHT1.0"
	PlayHTV2      VoiceEngine = "PlayHT2.0"
	PlayHTV2Turbo VoiceEngine = "PlayHT2.0-turbo"
)

// OutputFormat is the audio container/codec of the generated audio.
type OutputFormat string

const (
	Mp3   OutputFormat = "mp3"
	Wav   OutputFormat = "wav"
	Ogg   OutputFormat = "ogg"
	Flac  OutputFormat = "flac"
	Mulaw OutputFormat = "mulaw"
)

// Quality trades synthesis latency for audio fidelity.
type Quality string

const (
	QualityDraft   Quality = "draft"
	QualityLow     Quality = "low"
	QualityMedium  Quality = "medium"
	QualityHigh    Quality = "high"
	QualityPremium Quality = "premium"
)

// Emotion steers the emotional delivery of the generated voice.
type Emotion string

const (
	FemaleHappy     Emotion = "female_happy"
	FemaleSad       Emotion = "female_sad"
	FemaleAngry     Emotion = "female_angry"
	FemaleFearful   Emotion = "female_fearful"
	FemaleDisgust   Emotion = "female_disgust"
	FemaleSurprised Emotion = "female_surprised"
	MaleHappy       Emotion = "male_happy"
	MaleSad         Emotion = "male_sad"
	MaleAngry       Emotion = "male_angry"
	MaleFearful     Emotion = "male_fearful"
	MaleDisgust     Emotion = "male_disgust"
	MaleSurprised   Emotion = "male_surprised"
)
