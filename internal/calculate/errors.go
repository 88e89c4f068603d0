package calculate

import (
	"errors"
	"net/http"
)

// Kind классифицирует ошибку вычисления
type Kind string

const (
	KindInvalidInput    Kind = "InvalidInput"
	KindInvalidOperator Kind = "InvalidOperator"
	KindDivisionByZero  Kind = "DivisionByZero"
)

// Сообщения, которые видит клиент
const (
	MsgInvalidInput    = "Please enter valid numbers"
	MsgInvalidOperator = "Invalid operator"
	MsgDivisionByZero  = "Division by zero is not allowed"
)

// CalcError описывает пользовательскую ошибку обработки запроса на вычисление
type CalcError struct {
	Kind    Kind
	Message string
}

func (e *CalcError) Error() string {
	return e.Message
}

// Status возвращает HTTP-статус для ошибки. Все пользовательские ошибки - 400.
func (e *CalcError) Status() int {
	return http.StatusBadRequest
}

// Is позволяет сравнивать ошибки по виду через errors.Is
func (e *CalcError) Is(target error) bool {
	var t *CalcError
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// NewCalcError создает новую ошибку CalcError
func NewCalcError(kind Kind, message string) *CalcError {
	return &CalcError{Kind: kind, Message: message}
}

// InvalidInputError создаёт ошибку некорректного операнда
func InvalidInputError() *CalcError {
	return NewCalcError(KindInvalidInput, MsgInvalidInput)
}

// InvalidOperatorError создаёт ошибку неизвестного оператора
func InvalidOperatorError() *CalcError {
	return NewCalcError(KindInvalidOperator, MsgInvalidOperator)
}

// DivisionByZeroError создаёт ошибку деления на ноль
func DivisionByZeroError() *CalcError {
	return NewCalcError(KindDivisionByZero, MsgDivisionByZero)
}

var (
	ErrInvalidInput    = InvalidInputError()
	ErrInvalidOperator = InvalidOperatorError()
	ErrDivisionByZero  = DivisionByZeroError()
)

// FromMessage восстанавливает типизированную ошибку по тексту ответа сервиса
func FromMessage(message string) *CalcError {
	switch message {
	case MsgInvalidInput:
		return InvalidInputError()
	case MsgInvalidOperator:
		return InvalidOperatorError()
	case MsgDivisionByZero:
		return DivisionByZeroError()
	}
	return nil
}
