package apitype

// Command is the payload sent through the event broker.
type Command interface{}
