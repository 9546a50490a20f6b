// Command audiocheck drives the audio storage API through its upload and
// download contract and reports every check.
package main

func main() {
	Execute()
}
