package store

import (
	"github.com/MixinNetwork/mixin/logger"
)

type badgerLogger struct{}

func (l *badgerLogger) Errorf(f string, v ...interface{}) {
	logger.Printf("BADGER ERROR "+f, v...)
}

func (l *badgerLogger) Warningf(f string, v ...interface{}) {
	logger.Printf("BADGER WARNING "+f, v...)
}

func (l *badgerLogger) Infof(f string, v ...interface{}) {
	logger.Verbosef("BADGER "+f, v...)
}

func (l *badgerLogger) Debugf(f string, v ...interface{}) {
}
