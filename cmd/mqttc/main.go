// Command mqttc is a minimal MQTT 5 client: pub publishes one message and
// exits; sub subscribes and prints every message received until the user
// presses ENTER. Flag surface follows mqtt-cli's publish/subscribe
// subcommands: topic, qos, and (for pub) the payload.
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "pub":
		err = runPublish(os.Args[2:])
	case "sub":
		err = runSubscribe(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "mqttc:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: mqttc pub -topic T -message M [-qos 0|1|2] [-broker host:port]")
	fmt.Fprintln(os.Stderr, "       mqttc sub -topic T [-qos 0|1|2] [-broker host:port]")
}
