package app

// MarshallerSvc describes the service that is in charge of marshalling and unmarshalling the data.
type MarshallerSvc interface {
	Marshal(v interface{}) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error
}
