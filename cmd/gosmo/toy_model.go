package main

import "context"

// calculatorModel is a small demonstration model: a stack-based calculator
// with push/pop/add steps, guarded so pop and add never run on too few
// operands. It exists only to give the demo CLI something to generate tests
// against.
type calculatorModel struct {
	stack []int
}

func (m *calculatorModel) Step_push(context.Context) error {
	m.stack = append(m.stack, 1)
	return nil
}

func (m *calculatorModel) Step_pop(context.Context) error {
	m.stack = m.stack[:len(m.stack)-1]
	return nil
}

func (m *calculatorModel) Guard_pop() bool { return len(m.stack) > 0 }

func (m *calculatorModel) Step_add(context.Context) error {
	n := len(m.stack)
	sum := m.stack[n-1] + m.stack[n-2]
	m.stack = append(m.stack[:n-2], sum)
	return nil
}

func (m *calculatorModel) Guard_add() bool { return len(m.stack) >= 2 }

func (m *calculatorModel) Weight_push() float64 { return 2.0 }

func (m *calculatorModel) BeforeSuite(context.Context) error {
	m.stack = nil
	return nil
}
