package response

// ValuesValidation reports per-field errors keyed by field id.
type ValuesValidation struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}

func NewValuesValidation(errs map[string]string) ValuesValidation {
	if errs == nil {
		errs = map[string]string{}
	}
	return ValuesValidation{Valid: len(errs) == 0, Errors: errs}
}

type Health struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type Pong struct {
	Message string `json:"message"`
}
