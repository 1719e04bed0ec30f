package main

import "github/chapool/signer-pool/cmd"

func main() {
	cmd.Execute()
}
