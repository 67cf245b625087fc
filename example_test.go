package adapta_test

import (
	"context"
	"fmt"
	"log"

	"github.com/automkit/adapta"
	"github.com/automkit/adapta/pkg/domain"
)

func ExampleEngine_Run() {
	eng := adapta.New()

	a := domain.NewState("A")
	b := domain.NewState("B")
	b.SetAcceptState()
	a.CreateTransitionTo(b, domain.NewConditionSet("a"), nil)
	eng.Register("word", a)

	res, err := eng.Run(context.Background(), "word", []string{"a"})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(res.Outcome)
	fmt.Println(res.Final.Name)
	// Output:
	// accepted
	// B
}
