package casing_test

import (
	"fmt"

	"github.com/erraggy/taxokit/casing"
)

func ExampleCamelCase() {
	fmt.Println(casing.CamelCase("foo-bar"))
	fmt.Println(casing.CamelCase("foo-BAR-baz", casing.PreserveConsecutiveUppercase(true)))
	// Output:
	// fooBar
	// fooBARBaz
}

func ExamplePascalCase() {
	fmt.Println(casing.PascalCase("foo-bar"))
	// Output: FooBar
}

func ExampleKebabCase() {
	fmt.Println(casing.KebabCase("XMLHttpRequest"))
	// Output: xml-http-request
}

func ExampleSplitWords() {
	fmt.Printf("%q\n", casing.SplitWords("fooBARBaz"))
	fmt.Printf("%q\n", casing.SplitWords("foo123bar", casing.SplitOnNumbers(false)))
	// Output:
	// ["foo" "BAR" "Baz"]
	// ["foo123bar"]
}

func ExampleParseStyle() {
	style, err := casing.ParseStyle("snake_case")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(style.Convert("errorCategory"))
	// Output: error_category
}
