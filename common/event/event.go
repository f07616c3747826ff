package event

import (
	"fmt"
	"reflect"
	"sync"

	messagebus "github.com/vardius/message-bus"
	"vincit.fi/exif-renamer/api"
	"vincit.fi/exif-renamer/api/apitype"
	"vincit.fi/exif-renamer/common/logger"
)

// Broker delivers commands from the services to the interaction layer.
// Handlers run on the message bus goroutines; Flush waits until every
// published message has been handled. Handlers must not publish through
// the same broker.
type Broker struct {
	bus         messagebus.MessageBus
	mutex       sync.Mutex
	subscribers map[api.Topic]int
	pending     sync.WaitGroup
}

func InitBus(queueSize int) *Broker {
	return &Broker{
		bus:         messagebus.New(queueSize),
		subscribers: map[api.Topic]int{},
	}
}

func (s *Broker) Subscribe(topic api.Topic, fn interface{}) {
	callback := reflect.ValueOf(fn)
	if callback.Kind() != reflect.Func {
		logger.Error.Panicf("Could not subscribe to '%s': %T is not a function", topic, fn)
	}

	cb := func(params ...interface{}) {
		defer s.pending.Done()
		args := make([]reflect.Value, 0, len(params))
		for _, param := range params {
			args = append(args, reflect.ValueOf(param))
		}
		logger.Trace.Printf("Calling topic '%s' with: %v", topic, params)
		callback.Call(args)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	if err := s.bus.Subscribe(string(topic), cb); err != nil {
		logger.Error.Panic("Could not subscribe ", err)
	}
	s.subscribers[topic]++
}

func (s *Broker) SendToTopic(topic api.Topic) {
	logger.Trace.Printf("Sending to '%s'", topic)
	s.publish(topic)
}

func (s *Broker) SendCommandToTopic(topic api.Topic, command apitype.Command) {
	logger.Trace.Printf("Sending command to '%s'", topic)
	s.publish(topic, command)
}

func (s *Broker) SendError(message string, err error) {
	formattedMessage := ""
	if err != nil {
		formattedMessage = fmt.Sprintf("%s\n%s", message, err.Error())
	} else {
		formattedMessage = message
	}
	logger.Debug.Printf("Sending error: %s", formattedMessage)
	s.SendCommandToTopic(api.ShowError, &api.ErrorCommand{Message: message, Err: err})
}

// Flush blocks until all messages published so far have been handled.
func (s *Broker) Flush() {
	s.pending.Wait()
}

// publish holds the mutex until the message is queued so that the handler
// count added to pending matches the handlers the bus delivers to.
func (s *Broker) publish(topic api.Topic, data ...interface{}) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	handlers := s.subscribers[topic]
	if handlers > 0 {
		s.pending.Add(handlers)
		s.bus.Publish(string(topic), data...)
	}
}
