package library

import (
	"errors"
	"strconv"
	"sync"

	"vincit.fi/exif-renamer/api"
	"vincit.fi/exif-renamer/api/apitype"
)

type sentCommand struct {
	topic   api.Topic
	command apitype.Command
}

type StubSender struct {
	mutex    sync.Mutex
	commands []sentCommand
	errors   []*api.ErrorCommand
}

func (s *StubSender) SendToTopic(topic api.Topic) {
	s.SendCommandToTopic(topic, nil)
}

func (s *StubSender) SendCommandToTopic(topic api.Topic, command apitype.Command) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.commands = append(s.commands, sentCommand{topic: topic, command: command})
}

func (s *StubSender) SendError(message string, err error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.errors = append(s.errors, &api.ErrorCommand{Message: message, Err: err})
}

func (s *StubSender) renamed() []*api.ImageRenamedCommand {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	var commands []*api.ImageRenamedCommand
	for _, sent := range s.commands {
		if sent.topic == api.ImageRenamed {
			commands = append(commands, sent.command.(*api.ImageRenamedCommand))
		}
	}
	return commands
}

func (s *StubSender) count(topic api.Topic) int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	count := 0
	for _, sent := range s.commands {
		if sent.topic == topic {
			count++
		}
	}
	return count
}

type StubJournal struct {
	records []*apitype.RenameRecord
	err     error
	nextId  int
}

func (s *StubJournal) AddRename(record *apitype.RenameRecord) error {
	if s.err != nil {
		return s.err
	}
	s.nextId++
	record.Id = strconv.Itoa(s.nextId)
	s.records = append(s.records, record)
	return nil
}

func (s *StubJournal) LatestRename() (*apitype.RenameRecord, error) {
	for i := len(s.records) - 1; i >= 0; i-- {
		record := s.records[i]
		if !record.Undone && record.Kind != apitype.UndoRename {
			return record, nil
		}
	}
	return nil, nil
}

func (s *StubJournal) MarkUndone(id string) error {
	for _, record := range s.records {
		if record.Id == id {
			record.Undone = true
			return nil
		}
	}
	return errors.New("not found")
}

func (s *StubJournal) GetRenames(limit int) ([]*apitype.RenameRecord, error) {
	var records []*apitype.RenameRecord
	for i := len(s.records) - 1; i >= 0; i-- {
		if limit > 0 && len(records) == limit {
			break
		}
		records = append(records, s.records[i])
	}
	return records, nil
}

type StubReader struct {
	mutex    sync.Mutex
	metaData map[string]apitype.MetaData
	reads    int
}

func (s *StubReader) ReadMetaData(path string) (apitype.MetaData, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.reads++
	metaData, found := s.metaData[path]
	return metaData, found
}
