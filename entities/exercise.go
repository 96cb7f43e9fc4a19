package entities

// Exercise is the persisted reference shape for exercise guidance. Form
// guidance is currently served from the static catalog in pkg/exercise.
type Exercise struct {
	ID             string   `bson:"_id,omitempty" json:"id,omitempty"`
	Name           string   `bson:"name" json:"name" validate:"required"`
	MuscleGroup    string   `bson:"muscle_group" json:"muscle_group" validate:"required"`
	Cues           []string `bson:"cues" json:"cues"`
	CommonMistakes []string `bson:"common_mistakes" json:"common_mistakes"`

	Timestamp `bson:",inline"`
}
