// Command leaguelookup prints League of Legends player statistics from the Riot API.
package main

func main() {
	Execute()
}
