package burrow

// Example is the two row example burrow.
const Example = `#############
#...........#
###B#C#B#D###
  #A#D#C#A#
  #########
`

// ExampleUnfolded is Example after Unfold.
const ExampleUnfolded = `#############
#...........#
###B#C#B#D###
  #D#C#B#A#
  #D#B#A#C#
  #A#D#C#A#
  #########
`

// ExampleDeep is a six row burrow with a twelve cell hallway and open elbows.
const ExampleDeep = `##############
#............#
###B#C#B#D####
  #D#C#B#A#
  #D#B#A#C#
  #D#C#B#A#
  #D#B#A#C#
  #A#D#C#A#
  #########
`
