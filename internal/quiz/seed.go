package quiz

var quizzes = []Quiz{
	{
		ModuleID: "geometry-basics",
		Sections: []Section{
			{
				Title:   "What is Geometry?",
				Content: "Geometry is the branch of mathematics that deals with shapes, sizes, positions, angles, and dimensions of objects. It's all around us, from the rectangular screen you're reading this on to the circular wheels on cars.",
			},
			{
				Title: "Basic Shapes",
				Content: "Let's start with the most fundamental shapes:\n\n" +
					"- Rectangle: a four-sided shape with opposite sides equal and all angles 90°\n" +
					"- Circle: a round shape where every point is the same distance from the center\n" +
					"- Triangle: a three-sided shape with three angles that always add up to 180°\n" +
					"- Square: a special rectangle where all sides are equal",
			},
			{
				Title: "Calculating Area",
				Content: "Area tells us how much space a shape covers:\n\n" +
					"- Rectangle: length × width\n" +
					"- Circle: π × radius²\n" +
					"- Triangle: (base × height) ÷ 2\n" +
					"- Square: side × side",
			},
		},
		Questions: []Question{
			{
				Prompt:      "What is the area of a rectangle with length 8 and width 5?",
				Options:     []string{"40", "26", "13", "35"},
				Correct:     0,
				Explanation: "Area of rectangle = length × width = 8 × 5 = 40 square units",
			},
			{
				Prompt:      "In a triangle, the three angles always add up to:",
				Options:     []string{"90°", "180°", "270°", "360°"},
				Correct:     1,
				Explanation: "The sum of angles in any triangle is always 180°.",
			},
			{
				Prompt:      "Which shape has all sides equal and all angles 90°?",
				Options:     []string{"Rectangle", "Circle", "Square", "Triangle"},
				Correct:     2,
				Explanation: "A square is a special rectangle where all four sides are equal and all angles are 90°.",
			},
		},
	},
	{
		ModuleID: "fraction-practice",
		Sections: []Section{
			{
				Title:   "Understanding Fractions",
				Content: "A fraction represents a part of a whole. The top number (numerator) tells us how many parts we have, and the bottom number (denominator) tells us how many parts make up the whole.",
			},
			{
				Title: "Adding Fractions",
				Content: "To add fractions with the same denominator, add the numerators:\n\n3/8 + 2/8 = 5/8\n\n" +
					"For different denominators, find a common denominator first:\n\n1/4 + 1/6 = 3/12 + 2/12 = 5/12",
			},
		},
		Questions: []Question{
			{
				Prompt:      "What is 1/4 + 1/4?",
				Options:     []string{"1/8", "2/8", "2/4", "1/2"},
				Correct:     2,
				Explanation: "1/4 + 1/4 = 2/4, which can be simplified to 1/2",
			},
			{
				Prompt:      "What is 3/8 + 1/8?",
				Options:     []string{"4/16", "4/8", "3/16", "1/2"},
				Correct:     1,
				Explanation: "When denominators are the same, add the numerators: 3/8 + 1/8 = 4/8",
			},
			{
				Prompt:      "In the fraction 3/7, what is the numerator?",
				Options:     []string{"7", "3", "10", "4"},
				Correct:     1,
				Explanation: "The numerator is the top number in a fraction. In 3/7, the numerator is 3.",
			},
		},
	},
	{
		ModuleID: "algebra-review",
		Sections: []Section{
			{
				Title: "Key Concepts Covered",
				Content: "This video covers:\n\n" +
					"- What variables are and how to use them\n" +
					"- Solving simple equations\n" +
					"- The balance method for equation solving\n" +
					"- Checking your answers",
			},
			{
				Title: "Practice Tips",
				Content: "After watching the video:\n\n" +
					"- Solve equations step by step\n" +
					"- Check your answer by substituting back\n" +
					"- What you do to one side, do to the other\n" +
					"- Start with simple equations and build up",
			},
		},
		Questions: []Question{
			{
				Prompt:      "Solve for x: 2x + 3 = 11",
				Options:     []string{"x = 4", "x = 7", "x = 5", "x = 3"},
				Correct:     0,
				Explanation: "2x + 3 = 11\n2x = 8\nx = 4",
			},
			{
				Prompt: "What is a variable in algebra?",
				Options: []string{
					"A number that never changes",
					"A letter that represents an unknown number",
					"Always equal to zero",
					"The answer to an equation",
				},
				Correct:     1,
				Explanation: "A variable is a letter (like x or y) that stands for an unknown number.",
			},
			{
				Prompt:      "If x = 5, what is 3x - 2?",
				Options:     []string{"13", "17", "15", "11"},
				Correct:     0,
				Explanation: "Substitute x = 5: 3(5) - 2 = 15 - 2 = 13",
			},
		},
	},
}
