package logging

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// LogLevel определяет уровни логирования
type LogLevel int

const (
	TRACE LogLevel = iota
	DEBUG
	INFO
	WARN
	ERROR
)

// String возвращает строковое представление уровня логирования
func (l LogLevel) String() string {
	switch l {
	case TRACE:
		return "TRACE"
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger пишет сообщения в файл (все уровни) и в консоль (INFO и выше)
type Logger struct {
	consoleLogger   *log.Logger
	fileLogger      *log.Logger
	file            *os.File
	minConsoleLevel LogLevel
}

var (
	defaultLogger *Logger
	defaultMu     sync.Mutex
)

// NewLogger создаёт логгер компонента с файлом в каталоге logs
func NewLogger(component string) (*Logger, error) {
	if err := os.MkdirAll("logs", 0755); err != nil {
		return nil, fmt.Errorf("ошибка создания директории logs: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := filepath.Join("logs", fmt.Sprintf("%s_%s.log", component, timestamp))

	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания файла логов: %w", err)
	}

	return &Logger{
		consoleLogger:   log.New(os.Stdout, "", log.LstdFlags),
		fileLogger:      log.New(file, "", log.LstdFlags),
		file:            file,
		minConsoleLevel: INFO,
	}, nil
}

// Close закрывает файл логгера
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Log пишет сообщение указанного уровня
func (l *Logger) Log(level LogLevel, format string, args ...interface{}) {
	message := fmt.Sprintf("[%s] %s", level.String(), fmt.Sprintf(format, args...))

	if l.fileLogger != nil {
		l.fileLogger.Println(message)
	}
	if level >= l.minConsoleLevel {
		l.consoleLogger.Println(message)
	}
}

// InitDefaultLogger инициализирует глобальный логгер процесса
func InitDefaultLogger(component string) error {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	logger, err := NewLogger(component)
	if err != nil {
		return err
	}
	defaultLogger = logger
	return nil
}

// CloseDefaultLogger закрывает глобальный логгер
func CloseDefaultLogger() {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultLogger != nil {
		defaultLogger.Close()
		defaultLogger = nil
	}
}

func logMessage(level LogLevel, format string, args ...interface{}) {
	defaultMu.Lock()
	l := defaultLogger
	defaultMu.Unlock()

	if l == nil {
		// логирование не инициализировано — не теряем сообщения важных уровней
		if level >= INFO {
			log.Printf("[%s] %s", level.String(), fmt.Sprintf(format, args...))
		}
		return
	}
	l.Log(level, format, args...)
}

// Trace логирует сообщение уровня TRACE
func Trace(format string, args ...interface{}) {
	logMessage(TRACE, format, args...)
}

// Debug логирует сообщение уровня DEBUG
func Debug(format string, args ...interface{}) {
	logMessage(DEBUG, format, args...)
}

// Info логирует сообщение уровня INFO
func Info(format string, args ...interface{}) {
	logMessage(INFO, format, args...)
}

// Warn логирует сообщение уровня WARN
func Warn(format string, args ...interface{}) {
	logMessage(WARN, format, args...)
}

// Error логирует сообщение уровня ERROR
func Error(format string, args ...interface{}) {
	logMessage(ERROR, format, args...)
}
