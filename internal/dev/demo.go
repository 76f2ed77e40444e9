package dev

import (
	"github.com/puerro-dev/puerro/pkg/dom"
	"github.com/puerro-dev/puerro/pkg/observable"
	"github.com/puerro-dev/puerro/pkg/vdom"
)

// DemoApp is the built-in example: a counter and a todo list, enough to
// drive every patch kind through the differ.
type DemoApp struct {
	State *observable.Object
	Todos *observable.List[string]
}

// NewDemoApp creates the demo state containers.
func NewDemoApp() *DemoApp {
	return &DemoApp{
		State: observable.NewObject(observable.Snapshot{"count": 0}),
		Todos: observable.NewList([]string{"watch the patch stream"}),
	}
}

// View renders the demo from current state.
func (a *DemoApp) View(state *observable.Object) *vdom.VNode {
	count := a.count()

	return vdom.Div(vdom.ID("app"),
		vdom.H1("Puerro"),

		vdom.Section(vdom.Class("counter"),
			vdom.Button(
				vdom.Data("action", "increment"),
				vdom.OnClick(func(dom.Event) { a.Increment() }),
				"+1",
			),
			vdom.Output(vdom.Textf("%d", count)),
		),

		vdom.Section(vdom.Class("todos"),
			vdom.Form(
				vdom.Data("action", "add"),
				vdom.OnSubmit(func(e dom.Event) {
					if e.Value != "" {
						a.Todos.Add(e.Value)
					}
				}),
				vdom.Input(vdom.TypeAttr("text"), vdom.Name("todo"), vdom.Placeholder("What needs doing?")),
				vdom.Button(vdom.TypeAttr("submit"), "Add"),
			),
			vdom.Ul(vdom.Map(a.Todos.Items(), func(item string) *vdom.VNode {
				return vdom.Li(
					vdom.Span(item),
					vdom.Button(
						vdom.Data("action", "remove"),
						vdom.Data("todo", item),
						vdom.OnClick(func(dom.Event) { a.Todos.Remove(item) }),
						"done",
					),
				)
			})),
		),
	)
}

// Increment bumps the counter by one.
func (a *DemoApp) Increment() {
	a.State.Push("count", a.count()+1)
}

// count reads the current counter value.
func (a *DemoApp) count() int {
	v, _ := a.State.Value("count")
	n, _ := v.(int)
	return n
}
